package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"dnevnik/internal/domain/user"
)

// UserRepository - локальная таблица учетных данных.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(storage *Storage) *UserRepository {
	return &UserRepository{db: storage.DB()}
}

func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, created_at)
		VALUES (?, ?, ?)
	`, username, passwordHash, time.Now().Format(time.RFC3339Nano))

	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return user.ErrExists
		}
		return fmt.Errorf("ошибка создания пользователя: %w", err)
	}

	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (user.User, error) {
	var u user.User
	var createdAt string

	err := r.db.QueryRowContext(ctx, `
		SELECT username, password_hash, created_at
		FROM users
		WHERE username = ?
	`, username).Scan(&u.Username, &u.PasswordHash, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}

	u.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return u, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET password_hash = ? WHERE username = ?", passwordHash, username)
	if err != nil {
		return fmt.Errorf("ошибка обновления пароля: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка обновления пароля: %w", err)
	}
	if affected == 0 {
		return user.ErrNotFound
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE username = ?", username); err != nil {
		return fmt.Errorf("ошибка удаления пользователя: %w", err)
	}
	return nil
}
