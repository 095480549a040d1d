// cmd/dnevnik/cmd/auth/login.go
package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dnevnik/cmd/dnevnik/cmd/types"
	"dnevnik/internal/app/client"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в дневник",
	Long: `Проверка учетных данных и открытие сеанса.

После входа имя пользователя сохраняется локально, и последующие
команды выполняются от его имени.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Вход ===")
		fmt.Println()

		// Запрашиваем имя пользователя
		fmt.Print("Имя пользователя: ")
		var username string
		_, _ = fmt.Scanln(&username)

		// Запрашиваем пароль
		fmt.Print("Пароль: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		fmt.Println("Проверка учетных данных...")
		if err := app.Login(cmd.Context(), username, string(password)); err != nil {
			return fmt.Errorf("ошибка входа: %w", err)
		}

		fmt.Println()
		fmt.Println("✅ Вход выполнен успешно!")

		return nil
	},
}
