// cmd/dnevnik/cmd/export/init.go
package export

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"dnevnik/cmd/dnevnik/cmd/types"
	"dnevnik/internal/app/client"
)

var InitCmd = &cobra.Command{
	Use:   "init <путь>",
	Short: "Настроить директорию экспорта",
	Long: `Сохраняет путь к директории экспорта в настройках пользователя и
создает подпапки Text, Audio и Video. Повторный запуск безопасен.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		dir, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("неверный путь: %w", err)
		}

		fmt.Printf("Настройка директории экспорта: %s\n", dir)
		if err := app.InitExportDir(cmd.Context(), dir); err != nil {
			return fmt.Errorf("ошибка настройки экспорта: %w", err)
		}

		fmt.Println()
		fmt.Println("✅ Директория экспорта настроена!")
		fmt.Println("Новые записи будут зеркалироваться в подпапки Text, Audio и Video.")

		return nil
	},
}
