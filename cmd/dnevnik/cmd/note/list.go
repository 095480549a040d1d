// cmd/dnevnik/cmd/note/list.go
package note

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dnevnik/cmd/dnevnik/cmd/types"
	"dnevnik/internal/app/client"
	"dnevnik/internal/domain/note"
)

var (
	listKind   string
	listFormat string
	listTitle  string
	listTag    string
	listDate   string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список записей",
	Long: `Просмотр списка записей с фильтрацией по типу, дате, заголовку и тегам.

Шаблоны --title и --tag поддерживают glob-синтаксис (*, ?, [...]).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		filter := note.Filter{
			Kind:      note.Kind(listKind),
			TitleGlob: listTitle,
			TagGlob:   listTag,
			Date:      listDate,
		}

		notes, err := app.ListNotes(cmd.Context(), filter)
		if err != nil {
			return fmt.Errorf("ошибка получения списка записей: %w", err)
		}

		// Выводим результат
		switch listFormat {
		case "json":
			return printNotesJSON(notes)
		case "table":
			return printNotesTable(notes)
		case "csv":
			return printNotesCSV(notes)
		default:
			return printNotesSimple(notes)
		}
	},
}

func printNotesSimple(notes []*note.Note) error {
	if len(notes) == 0 {
		fmt.Println("Записи не найдены")
		return nil
	}

	fmt.Printf("Найдено записей: %d\n\n", len(notes))

	fileMark := color.New(color.FgGreen).SprintFunc()
	localMark := color.New(color.FgYellow).SprintFunc()

	for i, n := range notes {
		location := localMark("хранилище")
		if n.SavedToFile {
			location = fileMark("файл " + n.Filename)
		}

		fmt.Printf("%d. %s (%s)\n", i+1, n.Title, n.Kind.DisplayName())
		fmt.Printf("   ID: %s | Создано: %s | %s\n",
			n.ID,
			n.CreatedAt.Format("2006-01-02"),
			location)
		if n.Mood != "" {
			fmt.Printf("   Настроение: %s\n", n.Mood)
		}
		if len(n.Tags) > 0 {
			fmt.Printf("   Теги: %v\n", n.Tags)
		}
		fmt.Println()
	}

	return nil
}

func printNotesTable(notes []*note.Note) error {
	if len(notes) == 0 {
		fmt.Println("Записи не найдены")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tТип\tЗаголовок\tНастроение\tДлительность\tХранение\tСоздано\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t---\t\n")

	for _, n := range notes {
		location := "хранилище"
		if n.SavedToFile {
			location = "файл"
		}

		duration := "-"
		if d := n.Duration(); d > 0 {
			duration = (time.Duration(d) * time.Second).String()
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			n.ID,
			n.Kind,
			truncate(n.Title, 30),
			n.Mood,
			duration,
			location,
			n.CreatedAt.Format("2006-01-02"),
		)
	}

	w.Flush()
	fmt.Printf("\nВсего записей: %d\n", len(notes))
	return nil
}

func printNotesJSON(notes []*note.Note) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(notes)
}

func printNotesCSV(notes []*note.Note) error {
	fmt.Println("ID,Kind,Title,Mood,Duration,SavedToFile,CreatedAt")

	for _, n := range notes {
		fmt.Printf("%s,%s,%q,%q,%d,%t,%s\n",
			n.ID,
			n.Kind,
			n.Title,
			n.Mood,
			n.Duration(),
			n.SavedToFile,
			n.CreatedAt.Format(time.RFC3339),
		)
	}

	return nil
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listKind, "type", "t", "", "фильтр по типу записи")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода (simple, table, json, csv)")
	ListCmd.Flags().StringVar(&listTitle, "title", "", "glob-шаблон заголовка")
	ListCmd.Flags().StringVar(&listTag, "tag", "", "glob-шаблон тега")
	ListCmd.Flags().StringVar(&listDate, "date", "", "фильтр по дате (YYYY-MM-DD)")
}
