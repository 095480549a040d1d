package settings

import (
	"github.com/spf13/cobra"
)

// SettingsCmd - родительская команда настроек пользователя
var SettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Настройки пользователя",
	Long:  `Просмотр и изменение настроек: тема, шрифт, уведомления, экспорт.`,
}
