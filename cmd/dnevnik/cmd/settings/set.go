// cmd/dnevnik/cmd/settings/set.go
package settings

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dnevnik/cmd/dnevnik/cmd/types"
	"dnevnik/internal/app/client"
)

var SetCmd = &cobra.Command{
	Use:   "set <ключ> <значение>",
	Short: "Изменить настройку",
	Long: `Изменение одной настройки.

Доступные ключи:
- theme            - тема оформления (light, dark)
- font             - семейство шрифта
- notifications    - уведомления (true, false)
- private          - приватный режим (true, false)
- backup-days      - рекомендуемый интервал резервной копии в днях
- export-dir       - директория экспорта (пустая строка отключает)
- accent-color     - акцентный цвет (#rrggbb)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		cfg, err := app.GetSettings(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка чтения настроек: %w", err)
		}

		key, value := args[0], args[1]
		switch key {
		case "theme":
			cfg.Theme = value
		case "font":
			cfg.FontFamily = value
		case "notifications":
			cfg.Notifications, err = strconv.ParseBool(value)
		case "private":
			cfg.PrivateMode, err = strconv.ParseBool(value)
		case "backup-days":
			cfg.BackupIntervalDays, err = strconv.Atoi(value)
		case "export-dir":
			cfg.ExportDir = value
		case "accent-color":
			cfg.AccentColor = value
		default:
			return fmt.Errorf("неизвестный ключ настройки: %s", key)
		}
		if err != nil {
			return fmt.Errorf("неверное значение для %s: %w", key, err)
		}

		if err := app.SaveSettings(cmd.Context(), cfg); err != nil {
			return fmt.Errorf("ошибка сохранения настроек: %w", err)
		}

		fmt.Printf("✅ Настройка %s обновлена\n", key)
		return nil
	},
}
