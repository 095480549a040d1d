// cmd/dnevnik/cmd/settings/show.go
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dnevnik/cmd/dnevnik/cmd/types"
	"dnevnik/internal/app/client"
)

var showJSON bool

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Показать настройки",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		cfg, err := app.GetSettings(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка чтения настроек: %w", err)
		}

		if showJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(cfg)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Тема\t%s\n", cfg.Theme)
		fmt.Fprintf(w, "Шрифт\t%s\n", cfg.FontFamily)
		fmt.Fprintf(w, "Уведомления\t%t\n", cfg.Notifications)
		fmt.Fprintf(w, "Приватный режим\t%t\n", cfg.PrivateMode)
		fmt.Fprintf(w, "Резервная копия, дней\t%d\n", cfg.BackupIntervalDays)
		fmt.Fprintf(w, "Директория экспорта\t%s\n", cfg.ExportDir)
		fmt.Fprintf(w, "Акцентный цвет\t%s\n", cfg.AccentColor)
		return w.Flush()
	},
}

func init() {
	ShowCmd.Flags().BoolVar(&showJSON, "json", false, "вывод в формате JSON")
}
