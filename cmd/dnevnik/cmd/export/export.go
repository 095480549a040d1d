package export

import (
	"github.com/spf13/cobra"
)

// ExportCmd - родительская команда управления директорией экспорта
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Управление директорией экспорта",
	Long: `Настройка директории, в которую зеркалируется содержимое записей.

Внутри директории создаются подпапки Text, Audio и Video - по одной
на тип записи. Экспорт необязателен: без настроенной директории все
записи целиком хранятся в локальном хранилище.`,
}
