// cmd/dnevnik/cmd/auth/logout.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"dnevnik/cmd/dnevnik/cmd/types"
	"dnevnik/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из дневника",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if err := app.Logout(); err != nil {
			return fmt.Errorf("ошибка выхода: %w", err)
		}

		fmt.Println("Сеанс завершен.")
		return nil
	},
}
