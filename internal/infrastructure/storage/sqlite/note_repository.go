package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"dnevnik/internal/domain/note"
)

// NoteRepository реализует note.Repository поверх SQLite. Каждая запись
// хранится отдельной строкой; порядок вставки сохраняется автоинкрементным
// ключом seq.
type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(storage *Storage) *NoteRepository {
	return &NoteRepository{db: storage.DB()}
}

func (r *NoteRepository) Append(ctx context.Context, username string, n *note.Note) error {
	tags, err := json.Marshal(n.Tags)
	if err != nil {
		return fmt.Errorf("ошибка сериализации тегов: %w", err)
	}

	var content string
	var data, thumbnail []byte
	switch b := n.Body.(type) {
	case *note.TextBody:
		content = b.Content
	case *note.AudioBody:
		data = b.Data
	case *note.VideoBody:
		data = b.Data
		thumbnail = b.Thumbnail
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO notes (id, username, kind, title, content, data, thumbnail,
		                   duration, mood, tags, created_at, saved_to_file, filename)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, n.ID, username, n.Kind.String(), n.Title, content, data, thumbnail,
		n.Duration(), n.Mood, string(tags), n.CreatedAt.Format(time.RFC3339Nano),
		n.SavedToFile, n.Filename)

	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("%w: %s", note.ErrDuplicateID, n.ID)
		}
		return fmt.Errorf("ошибка сохранения записи: %w", err)
	}

	return nil
}

func (r *NoteRepository) List(ctx context.Context, username string) ([]*note.Note, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, title, content, data, thumbnail,
		       duration, mood, tags, created_at, saved_to_file, filename
		FROM notes
		WHERE username = ?
		ORDER BY seq
	`, username)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer rows.Close()

	var notes []*note.Note
	for rows.Next() {
		n, err := scanNote(rows.Scan)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения записей: %w", err)
	}

	return notes, nil
}

func (r *NoteRepository) Get(ctx context.Context, username, id string) (*note.Note, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, kind, title, content, data, thumbnail,
		       duration, mood, tags, created_at, saved_to_file, filename
		FROM notes
		WHERE username = ? AND id = ?
	`, username, id)

	n, err := scanNote(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, note.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return n, nil
}

func (r *NoteRepository) Wipe(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM notes WHERE username = ?", username); err != nil {
		return fmt.Errorf("ошибка очистки записей: %w", err)
	}
	return nil
}

func (r *NoteRepository) Count(ctx context.Context, username string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM notes WHERE username = ?", username).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчета записей: %w", err)
	}
	return count, nil
}

func scanNote(scan func(dest ...any) error) (*note.Note, error) {
	var (
		n         note.Note
		kind      string
		content   string
		data      []byte
		thumbnail []byte
		duration  int
		tagsJSON  string
		createdAt string
	)

	err := scan(&n.ID, &kind, &n.Title, &content, &data, &thumbnail,
		&duration, &n.Mood, &tagsJSON, &createdAt, &n.SavedToFile, &n.Filename)
	if err != nil {
		return nil, err
	}

	n.Kind = note.Kind(kind)

	// Нечитаемые теги не считаются фатальной ошибкой записи.
	if tagsJSON != "" {
		_ = json.Unmarshal([]byte(tagsJSON), &n.Tags)
	}

	n.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора даты записи %s: %w", n.ID, err)
	}

	switch n.Kind {
	case note.KindAudio:
		n.Body = &note.AudioBody{Data: data, Duration: duration}
	case note.KindVideo:
		n.Body = &note.VideoBody{Data: data, Duration: duration, Thumbnail: thumbnail}
	default:
		n.Body = &note.TextBody{Content: content}
	}

	return &n, nil
}
