package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (User, error)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
	Delete(ctx context.Context, username string) error
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

func (s *Service) Register(ctx context.Context, username, password string) error {
	if err := s.validator.ValidateRegister(username, password); err != nil {
		s.log.Debug("validation failed", "username", username, "error", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return ErrExists
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("check user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("хэш пароля: %w", err)
	}

	if err := s.repo.Create(ctx, username, string(hash)); err != nil {
		s.log.Error("failed to create user", "username", username, "error", err)
		return fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "username", username)
	return nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	if err := s.validator.ValidateUsername(username); err != nil {
		return User{}, ErrInvalidAuth
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidAuth
	}

	return u, nil
}

func (s *Service) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	if _, err := s.Authenticate(ctx, username, oldPassword); err != nil {
		return err
	}

	if err := s.validator.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("хэш пароля: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, username, string(hash)); err != nil {
		s.log.Error("failed to update password", "username", username, "error", err)
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info("password changed", "username", username)
	return nil
}

// Delete удаляет учетную запись. Используется только при полной
// очистке данных пользователя.
func (s *Service) Delete(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
