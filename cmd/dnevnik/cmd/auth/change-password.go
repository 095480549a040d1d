// cmd/dnevnik/cmd/auth/change-password.go
package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dnevnik/cmd/dnevnik/cmd/types"
	"dnevnik/internal/app/client"
)

var ChangePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Изменить пароль",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Print("Текущий пароль: ")
		oldPassword, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		fmt.Print("Новый пароль: ")
		newPassword, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		fmt.Print("Повторите новый пароль: ")
		newPasswordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		if string(newPassword) != string(newPasswordConfirm) {
			return fmt.Errorf("пароли не совпадают")
		}

		if err := app.ChangePassword(cmd.Context(), string(oldPassword), string(newPassword)); err != nil {
			return fmt.Errorf("ошибка изменения пароля: %w", err)
		}

		fmt.Println()
		fmt.Println("✅ Пароль изменен!")

		return nil
	},
}
