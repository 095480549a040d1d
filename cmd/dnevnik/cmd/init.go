// cmd/dnevnik/cmd/init.go
package cmd

import (
	"fmt"

	"dnevnik/cmd/dnevnik/cmd/auth"
	"dnevnik/cmd/dnevnik/cmd/backup"
	"dnevnik/cmd/dnevnik/cmd/export"
	"dnevnik/cmd/dnevnik/cmd/note"
	"dnevnik/cmd/dnevnik/cmd/settings"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Инициализировать дневник",
	Long: `Команда init выполняет первоначальную настройку:
	1. Создает локальную базу данных и применяет миграции
	2. Настраивает директорию для хранения данных

После инициализации зарегистрируйтесь и войдите в систему.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Проверяем, не инициализирован ли уже клиент
		if app.IsInitialized() {
			fmt.Println("Дневник уже инициализирован.")
			return nil
		}

		fmt.Println("=== Инициализация Dnevnik ===")
		fmt.Println()

		// База создана и мигрирована в setupApp, фиксируем состояние
		fmt.Println("Создание структуры данных...")
		if err := app.InitStorage(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка инициализации хранилища: %w", err)
		}

		fmt.Println()
		fmt.Println("✅ Инициализация успешно завершена!")
		fmt.Println()
		fmt.Println("Что дальше:")
		fmt.Println("1. Зарегистрируйтесь: dnevnik auth register")
		fmt.Println("2. Войдите в систему: dnevnik auth login")
		fmt.Println("3. Создайте первую запись: dnevnik note create")
		fmt.Println("4. (необязательно) Настройте экспорт в файлы: dnevnik export init <путь>")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	// Добавляем команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.ChangePasswordCmd)

	// Добавляем команды работы с записями
	rootCmd.AddCommand(note.NoteCmd)
	note.NoteCmd.AddCommand(note.CreateCmd)
	note.NoteCmd.AddCommand(note.ListCmd)
	note.NoteCmd.AddCommand(note.GetCmd)

	// Экспорт в директорию
	rootCmd.AddCommand(export.ExportCmd)
	export.ExportCmd.AddCommand(export.InitCmd)
	export.ExportCmd.AddCommand(export.StatusCmd)

	// Резервная копия
	rootCmd.AddCommand(backup.BackupCmd)
	backup.BackupCmd.AddCommand(backup.ExportCmd)
	backup.BackupCmd.AddCommand(backup.ImportCmd)

	// Настройки
	rootCmd.AddCommand(settings.SettingsCmd)
	settings.SettingsCmd.AddCommand(settings.ShowCmd)
	settings.SettingsCmd.AddCommand(settings.SetCmd)

	rootCmd.AddCommand(wipeCmd)
}
