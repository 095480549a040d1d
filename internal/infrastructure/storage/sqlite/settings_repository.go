package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dnevnik/internal/domain/settings"
)

// SettingsRepository - настройки пользователя, одна строка на имя.
type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(storage *Storage) *SettingsRepository {
	return &SettingsRepository{db: storage.DB()}
}

func (r *SettingsRepository) Get(ctx context.Context, username string) (settings.Settings, error) {
	var s settings.Settings
	var updatedAt string

	err := r.db.QueryRowContext(ctx, `
		SELECT username, theme, font_family, notifications, private_mode,
		       backup_interval_days, export_dir, accent_color, updated_at
		FROM settings
		WHERE username = ?
	`, username).Scan(&s.Username, &s.Theme, &s.FontFamily, &s.Notifications,
		&s.PrivateMode, &s.BackupIntervalDays, &s.ExportDir, &s.AccentColor, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return settings.Settings{}, settings.ErrNotFound
	}
	if err != nil {
		return settings.Settings{}, fmt.Errorf("ошибка чтения настроек: %w", err)
	}

	s.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s settings.Settings) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (username, theme, font_family, notifications, private_mode,
		                      backup_interval_days, export_dir, accent_color, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET
			theme = excluded.theme,
			font_family = excluded.font_family,
			notifications = excluded.notifications,
			private_mode = excluded.private_mode,
			backup_interval_days = excluded.backup_interval_days,
			export_dir = excluded.export_dir,
			accent_color = excluded.accent_color,
			updated_at = excluded.updated_at
	`, s.Username, s.Theme, s.FontFamily, s.Notifications, s.PrivateMode,
		s.BackupIntervalDays, s.ExportDir, s.AccentColor,
		s.UpdatedAt.Format(time.RFC3339Nano))

	if err != nil {
		return fmt.Errorf("ошибка сохранения настроек: %w", err)
	}

	return nil
}

func (r *SettingsRepository) Delete(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM settings WHERE username = ?", username); err != nil {
		return fmt.Errorf("ошибка удаления настроек: %w", err)
	}
	return nil
}
