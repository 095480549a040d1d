// cmd/dnevnik/cmd/backup/import.go
package backup

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dnevnik/cmd/dnevnik/cmd/types"
	"dnevnik/internal/app/client"
)

var ImportCmd = &cobra.Command{
	Use:   "import <файл>",
	Short: "Импортировать данные из JSON-документа",
	Long: `Импорт ранее экспортированного документа.

Внимание: локальные записи и настройки пользователя из документа
будут полностью заменены.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("ошибка чтения файла: %w", err)
		}

		username, count, err := app.BackupImport(cmd.Context(), data)
		if err != nil {
			return fmt.Errorf("ошибка импорта: %w", err)
		}

		fmt.Printf("✅ Импортировано записей: %d (пользователь %s)\n", count, username)

		return nil
	},
}
