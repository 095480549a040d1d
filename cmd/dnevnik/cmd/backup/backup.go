package backup

import (
	"github.com/spf13/cobra"
)

// BackupCmd - родительская команда резервного копирования
var BackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Резервная копия дневника",
	Long: `Экспорт и импорт данных пользователя в виде единого JSON-документа.

Импорт полностью заменяет локальные записи и настройки содержимым
документа - слияния нет.`,
}
