// cmd/dnevnik/cmd/export/status.go
package export

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dnevnik/cmd/dnevnik/cmd/types"
	"dnevnik/internal/app/client"
	"dnevnik/internal/export"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Состояние директории экспорта",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		root, status, err := app.ExportStatus(cmd.Context())
		if err != nil {
			if errors.Is(err, export.ErrNotConfigured) {
				fmt.Println("Директория экспорта не настроена.")
				fmt.Println("Настройте ее командой: dnevnik export init <путь>")
				return nil
			}
			return fmt.Errorf("ошибка проверки экспорта: %w", err)
		}

		ok := color.New(color.FgGreen).SprintFunc()
		missing := color.New(color.FgRed).SprintFunc()

		fmt.Printf("Директория экспорта: %s\n\n", root)
		for _, sub := range export.Subfolders {
			if status[sub] {
				fmt.Printf("  %s %s\n", ok("✓"), sub)
			} else {
				fmt.Printf("  %s %s (отсутствует)\n", missing("✗"), sub)
			}
		}

		return nil
	},
}
