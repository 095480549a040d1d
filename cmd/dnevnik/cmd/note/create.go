// cmd/dnevnik/cmd/note/create.go
package note

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dnevnik/cmd/dnevnik/cmd/types"
	"dnevnik/internal/app/client"
	"dnevnik/internal/domain/note"
)

var (
	noteKind      string
	noteTitle     string
	noteText      string
	noteMood      string
	noteTags      []string
	mediaPath     string
	thumbnailPath string
	durationSec   int
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать новую запись",
	Long: `Создание новой записи дневника.

Поддерживаемые типы записей:
- text  - текстовая запись
- audio - аудиозапись (файл с диска)
- video - видеозапись (файл с диска)

При настроенной директории экспорта содержимое дополнительно
сохраняется в файл; при ошибке экспорта запись целиком попадает
в локальное хранилище.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		// Если тип записи не указан, спрашиваем
		if noteKind == "" {
			fmt.Println("Выберите тип записи:")
			fmt.Println("1. Текстовая запись")
			fmt.Println("2. Аудиозапись")
			fmt.Println("3. Видеозапись")
			fmt.Print("Ваш выбор [1-3]: ")

			var choice string
			fmt.Scanln(&choice)

			switch choice {
			case "1":
				noteKind = "text"
			case "2":
				noteKind = "audio"
			case "3":
				noteKind = "video"
			default:
				return fmt.Errorf("неверный выбор")
			}
		}

		kind := note.Kind(strings.ToLower(noteKind))
		if err := kind.Validate(); err != nil {
			return err
		}

		// Запрашиваем заголовок
		if noteTitle == "" {
			fmt.Print("Заголовок записи: ")
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				noteTitle = scanner.Text()
			}
			if noteTitle == "" {
				return fmt.Errorf("заголовок записи обязателен")
			}
		}

		// Собираем тело в зависимости от типа
		var body note.Body
		var err error

		switch kind {
		case note.KindText:
			body, err = createTextBody()
		case note.KindAudio:
			body, err = createAudioBody()
		case note.KindVideo:
			body, err = createVideoBody()
		}
		if err != nil {
			return err
		}

		n := &note.Note{
			Title: noteTitle,
			Kind:  kind,
			Body:  body,
			Tags:  noteTags,
			Mood:  noteMood,
		}

		// Сохраняем запись
		fmt.Println("Сохранение записи...")
		saved, err := app.SaveNote(cmd.Context(), n)
		if err != nil {
			return fmt.Errorf("ошибка создания записи: %w", err)
		}

		fmt.Println()
		fmt.Printf("✅ Запись '%s' успешно создана (id %s)\n", saved.Title, saved.ID)
		if saved.SavedToFile {
			fmt.Printf("Экспортирована в файл: %s\n", saved.Filename)
		}

		return nil
	},
}

func createTextBody() (note.Body, error) {
	if noteText == "" {
		fmt.Println("Введите текст записи (Ctrl+D для завершения):")
		scanner := bufio.NewScanner(os.Stdin)
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		noteText = strings.Join(lines, "\n")
	}

	return &note.TextBody{Content: noteText}, nil
}

func createAudioBody() (note.Body, error) {
	data, err := readMediaFile()
	if err != nil {
		return nil, err
	}

	return &note.AudioBody{Data: data, Duration: durationSec}, nil
}

func createVideoBody() (note.Body, error) {
	data, err := readMediaFile()
	if err != nil {
		return nil, err
	}

	var thumbnail []byte
	if thumbnailPath != "" {
		thumbnail, err = os.ReadFile(thumbnailPath)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения миниатюры: %w", err)
		}
	}

	return &note.VideoBody{Data: data, Duration: durationSec, Thumbnail: thumbnail}, nil
}

func readMediaFile() ([]byte, error) {
	if mediaPath == "" {
		fmt.Print("Путь к медиафайлу: ")
		fmt.Scanln(&mediaPath)
	}

	data, err := os.ReadFile(mediaPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла: %w", err)
	}

	return data, nil
}

func init() {
	CreateCmd.Flags().StringVarP(&noteKind, "type", "t", "", "тип записи (text, audio, video)")
	CreateCmd.Flags().StringVarP(&noteTitle, "title", "n", "", "заголовок записи")
	CreateCmd.Flags().StringVar(&noteText, "text", "", "текст записи (для типа text)")
	CreateCmd.Flags().StringVarP(&noteMood, "mood", "m", "", "настроение")
	CreateCmd.Flags().StringSliceVar(&noteTags, "tags", nil, "теги через запятую")
	CreateCmd.Flags().StringVar(&mediaPath, "file", "", "путь к медиафайлу (для audio/video)")
	CreateCmd.Flags().StringVar(&thumbnailPath, "thumbnail", "", "путь к миниатюре (для video)")
	CreateCmd.Flags().IntVar(&durationSec, "duration", 0, "длительность в секундах (для audio/video)")
}
