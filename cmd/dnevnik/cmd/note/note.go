package note

import (
	"github.com/spf13/cobra"
)

// NoteCmd - родительская команда для всех операций с записями дневника
var NoteCmd = &cobra.Command{
	Use:   "note",
	Short: "Управление записями дневника",
	Long:  `Создание и просмотр текстовых, аудио- и видеозаписей.`,
}
