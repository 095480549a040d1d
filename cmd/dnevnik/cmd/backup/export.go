// cmd/dnevnik/cmd/backup/export.go
package backup

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dnevnik/cmd/dnevnik/cmd/types"
	"dnevnik/internal/app/client"
)

var exportOut string

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Экспортировать данные в JSON-документ",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		data, count, err := app.BackupExport(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка экспорта: %w", err)
		}

		if exportOut == "" {
			_, err = os.Stdout.Write(data)
			return err
		}

		if err := os.WriteFile(exportOut, data, 0600); err != nil {
			return fmt.Errorf("ошибка записи файла: %w", err)
		}

		fmt.Printf("✅ Экспортировано записей: %d\n", count)
		fmt.Printf("Документ сохранен: %s\n", exportOut)

		return nil
	},
}

func init() {
	ExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "файл документа (по умолчанию stdout)")
}
