// Package backup реализует ручной экспорт и импорт данных пользователя
// в виде единого JSON-документа. Импорт полностью заменяет локальные
// записи и настройки, слияния нет.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"dnevnik/internal/domain/note"
	"dnevnik/internal/domain/settings"
)

// Version - версия формата документа экспорта.
const Version = "1.0"

// Document - документ экспорта целиком.
type Document struct {
	Version    string            `json:"version"`
	Username   string            `json:"username"`
	ExportedAt time.Time         `json:"exported_at"`
	Settings   settings.Settings `json:"settings"`
	Notes      []NoteRecord      `json:"notes"`
}

// NoteRecord - плоская сериализуемая проекция записи. Бинарные поля
// кодируются в base64 средствами encoding/json.
type NoteRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Kind        note.Kind `json:"kind"`
	Content     string    `json:"content,omitempty"`
	Data        []byte    `json:"data,omitempty"`
	Thumbnail   []byte    `json:"thumbnail,omitempty"`
	Duration    int       `json:"duration,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Tags        []string  `json:"tags,omitempty"`
	Mood        string    `json:"mood,omitempty"`
	SavedToFile bool      `json:"saved_to_file"`
	Filename    string    `json:"filename,omitempty"`
}

type Service struct {
	notes    note.Repository
	settings settings.Servicer
	log      *slog.Logger
}

func NewService(notes note.Repository, settingsSvc settings.Servicer, log *slog.Logger) *Service {
	return &Service{
		notes:    notes,
		settings: settingsSvc,
		log:      log.With("component", "backup_service"),
	}
}

// Export собирает документ экспорта: настройки и полный список записей
// пользователя со встроенным содержимым.
func (s *Service) Export(ctx context.Context, username string) (*Document, error) {
	cfg, err := s.settings.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("export settings: %w", err)
	}

	notes, err := s.notes.List(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("export notes: %w", err)
	}

	doc := &Document{
		Version:    Version,
		Username:   username,
		ExportedAt: time.Now(),
		Settings:   cfg,
		Notes:      make([]NoteRecord, 0, len(notes)),
	}

	for _, n := range notes {
		doc.Notes = append(doc.Notes, toRecord(n))
	}

	s.log.Info("backup exported", "user", username, "notes", len(doc.Notes))
	return doc, nil
}

// Marshal сериализует документ с отступами.
func (s *Service) Marshal(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return data, nil
}

// Import разбирает документ и полностью заменяет локальные записи и
// настройки пользователя. Всё или ничего: при любой некорректной записи
// в документе локальные данные не изменяются.
func (s *Service) Import(ctx context.Context, data []byte) (string, int, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", 0, fmt.Errorf("разбор документа экспорта: %w", err)
	}

	if doc.Version != Version {
		return "", 0, fmt.Errorf("неподдерживаемая версия документа: %q", doc.Version)
	}

	if doc.Username == "" {
		return "", 0, fmt.Errorf("в документе не указан пользователь")
	}

	// Сначала восстанавливаем все записи в памяти - никакая запись в
	// хранилище не выполняется, пока документ не проверен целиком.
	restored := make([]*note.Note, 0, len(doc.Notes))
	for i, rec := range doc.Notes {
		n, err := fromRecord(rec)
		if err != nil {
			return "", 0, fmt.Errorf("запись %d: %w", i, err)
		}
		restored = append(restored, n)
	}

	if err := s.notes.Wipe(ctx, doc.Username); err != nil {
		return "", 0, fmt.Errorf("очистка записей перед импортом: %w", err)
	}

	for _, n := range restored {
		if err := s.notes.Append(ctx, doc.Username, n); err != nil {
			return "", 0, fmt.Errorf("импорт записи %s: %w", n.ID, err)
		}
	}

	doc.Settings.Username = doc.Username
	if err := s.settings.Save(ctx, doc.Settings); err != nil {
		return "", 0, fmt.Errorf("импорт настроек: %w", err)
	}

	s.log.Info("backup imported", "user", doc.Username, "notes", len(restored))
	return doc.Username, len(restored), nil
}

func toRecord(n *note.Note) NoteRecord {
	rec := NoteRecord{
		ID:          n.ID,
		Title:       n.Title,
		Kind:        n.Kind,
		Duration:    n.Duration(),
		CreatedAt:   n.CreatedAt,
		Tags:        n.Tags,
		Mood:        n.Mood,
		SavedToFile: n.SavedToFile,
		Filename:    n.Filename,
	}

	switch b := n.Body.(type) {
	case *note.TextBody:
		rec.Content = b.Content
	case *note.AudioBody:
		rec.Data = b.Data
	case *note.VideoBody:
		rec.Data = b.Data
		rec.Thumbnail = b.Thumbnail
	}

	return rec
}

func fromRecord(rec NoteRecord) (*note.Note, error) {
	if err := rec.Kind.Validate(); err != nil {
		return nil, err
	}

	n := &note.Note{
		ID:          rec.ID,
		Title:       rec.Title,
		Kind:        rec.Kind,
		CreatedAt:   rec.CreatedAt,
		Tags:        rec.Tags,
		Mood:        rec.Mood,
		SavedToFile: rec.SavedToFile,
		Filename:    rec.Filename,
	}

	switch rec.Kind {
	case note.KindText:
		n.Body = &note.TextBody{Content: rec.Content}
	case note.KindAudio:
		n.Body = &note.AudioBody{Data: rec.Data, Duration: rec.Duration}
	case note.KindVideo:
		n.Body = &note.VideoBody{Data: rec.Data, Duration: rec.Duration, Thumbnail: rec.Thumbnail}
	}

	if n.ID == "" {
		return nil, fmt.Errorf("%w: missing id", note.ErrInvalidData)
	}

	// Теневые метазаписи допускаются без содержимого: их файлы живут в
	// директории экспорта, документ хранит только метаданные.
	if !n.SavedToFile {
		if err := n.Validate(); err != nil {
			return nil, err
		}
	}

	return n, nil
}
