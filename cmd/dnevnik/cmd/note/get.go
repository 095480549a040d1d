// cmd/dnevnik/cmd/note/get.go
package note

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dnevnik/cmd/dnevnik/cmd/types"
	"dnevnik/internal/app/client"
	"dnevnik/internal/domain/note"
)

var outPath string

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Показать запись",
	Long: `Просмотр одной записи по идентификатору.

Для аудио и видео содержимое можно выгрузить в файл флагом --out.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		n, err := app.GetNote(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка получения записи: %w", err)
		}

		fmt.Printf("Заголовок:  %s\n", n.Title)
		fmt.Printf("Тип:        %s\n", n.Kind.DisplayName())
		fmt.Printf("Создано:    %s\n", n.CreatedAt.Format("2006-01-02 15:04:05"))
		if n.Mood != "" {
			fmt.Printf("Настроение: %s\n", n.Mood)
		}
		if len(n.Tags) > 0 {
			fmt.Printf("Теги:       %v\n", n.Tags)
		}
		if d := n.Duration(); d > 0 {
			fmt.Printf("Длительность: %d сек\n", d)
		}
		if n.SavedToFile {
			fmt.Printf("Хранение:   файл %s\n", n.Filename)
		} else {
			fmt.Printf("Хранение:   локальное хранилище\n")
		}

		switch body := n.Body.(type) {
		case *note.TextBody:
			if body.Content != "" {
				fmt.Println()
				fmt.Println(body.Content)
			}
		default:
			payload := n.Body.Payload()
			if len(payload) == 0 {
				break
			}
			if outPath == "" {
				fmt.Printf("\nСодержимое: %d байт (используйте --out для выгрузки)\n", len(payload))
				break
			}
			if err := os.WriteFile(outPath, payload, 0600); err != nil {
				return fmt.Errorf("ошибка выгрузки содержимого: %w", err)
			}
			fmt.Printf("\nСодержимое выгружено в %s\n", outPath)
		}

		return nil
	},
}

func init() {
	GetCmd.Flags().StringVarP(&outPath, "out", "o", "", "файл для выгрузки медиасодержимого")
}
