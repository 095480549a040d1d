// cmd/dnevnik/cmd/wipe.go
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var wipeYes bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Удалить все данные пользователя",
	Long: `Необратимо удаляет все записи и настройки текущего пользователя.

Удаление требует двойного подтверждения: флаг --yes и ввод слова
"удалить" в ответ на запрос.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !wipeYes {
			return fmt.Errorf("операция необратима; подтвердите флагом --yes")
		}

		fmt.Print("Введите 'удалить' для подтверждения: ")
		scanner := bufio.NewScanner(os.Stdin)
		var confirmation string
		if scanner.Scan() {
			confirmation = strings.TrimSpace(scanner.Text())
		}

		if confirmation != "удалить" {
			fmt.Println("Отменено.")
			return nil
		}

		if err := app.Wipe(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка удаления данных: %w", err)
		}

		fmt.Println()
		fmt.Println("Все записи и настройки удалены.")
		return nil
	},
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeYes, "yes", false, "подтвердить необратимое удаление")
}
