package settings

import "time"

// Settings - настройки пользователя. Чисто рекомендательная
// конфигурация: перекрестных инвариантов между полями нет.
type Settings struct {
	Username           string    `json:"username"`
	Theme              string    `json:"theme"`
	FontFamily         string    `json:"font_family"`
	Notifications      bool      `json:"notifications"`
	PrivateMode        bool      `json:"private_mode"`
	BackupIntervalDays int       `json:"backup_interval_days"`
	ExportDir          string    `json:"export_dir"`
	AccentColor        string    `json:"accent_color"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Default возвращает настройки по умолчанию для пользователя.
func Default(username string) Settings {
	return Settings{
		Username:           username,
		Theme:              "light",
		FontFamily:         "sans",
		Notifications:      true,
		PrivateMode:        false,
		BackupIntervalDays: 7,
		ExportDir:          "",
		AccentColor:        "#4a90d9",
	}
}
