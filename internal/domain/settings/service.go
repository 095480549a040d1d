package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Get(ctx context.Context, username string) (Settings, error)
	Save(ctx context.Context, s Settings) error
	Delete(ctx context.Context, username string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "settings_service"),
	}
}

// Get возвращает настройки пользователя. Отсутствие сохраненных
// настроек не является ошибкой - возвращаются значения по умолчанию.
func (s *Service) Get(ctx context.Context, username string) (Settings, error) {
	cfg, err := s.repo.Get(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Default(username), nil
		}
		s.log.Error("failed to load settings", "user", username, "error", err)
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}

	return cfg, nil
}

// Save сохраняет настройки целиком.
func (s *Service) Save(ctx context.Context, cfg Settings) error {
	cfg.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, cfg); err != nil {
		s.log.Error("failed to save settings", "user", cfg.Username, "error", err)
		return fmt.Errorf("save settings: %w", err)
	}

	s.log.Info("settings saved", "user", cfg.Username)
	return nil
}

// Delete удаляет настройки пользователя. Вызывается при полной очистке.
func (s *Service) Delete(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	return nil
}
