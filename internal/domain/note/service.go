package note

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/slog"
)

const cacheSize = 256

// Exporter - вторичный путь сохранения: зеркалирование записи в файл
// внутри выданной пользователем директории. Отсутствие настроенной
// директории - нормальное состояние, а не ошибка.
type Exporter interface {
	Configured() bool
	Export(n *Note) (filename string, err error)
}

// Filter - критерии выборки записей. Шаблоны заголовка и тега
// поддерживают glob-синтаксис (*, ?, [...]).
type Filter struct {
	Kind      Kind
	TitleGlob string
	TagGlob   string
	Date      string // YYYY-MM-DD
}

type Servicer interface {
	Save(ctx context.Context, username string, n *Note, exporter Exporter) (*Note, error)
	List(ctx context.Context, username string, filter Filter) ([]*Note, error)
	Find(ctx context.Context, username, id string) (*Note, error)
	Wipe(ctx context.Context, username string) error
	Count(ctx context.Context, username string) (int, error)
}

type Service struct {
	repo  Repository
	cache *lru.Cache[string, *Note]
	log   *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) (*Service, error) {
	cache, err := lru.New[string, *Note](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create note cache: %w", err)
	}

	return &Service{
		repo:  repo,
		cache: cache,
		log:   log.With("component", "note_service"),
	}, nil
}

// Save сохраняет запись. Сначала выполняется попытка экспорта в файл;
// при успехе в хранилище попадает теневая метазапись без встроенного
// содержимого, при любой ошибке - полная запись с содержимым внутри.
// Частичных состояний не остается, повторных попыток нет.
func (s *Service) Save(ctx context.Context, username string, n *Note, exporter Exporter) (*Note, error) {
	now := time.Now()
	if n.ID == "" {
		n.ID = NewID(now)
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}

	if err := n.Validate(); err != nil {
		return nil, err
	}

	stored := n
	if exporter != nil && exporter.Configured() {
		filename, err := exporter.Export(n)
		if err != nil {
			s.log.Warn("не удалось экспортировать запись в файл, сохраняем в хранилище",
				"note_id", n.ID, "kind", n.Kind, "error", err)
			n.SavedToFile = false
			n.Filename = ""
		} else {
			stored = n.Shadow(filename)
		}
	}

	if err := s.repo.Append(ctx, username, stored); err != nil {
		s.log.Error("failed to append note", "note_id", stored.ID, "user", username, "error", err)
		return nil, fmt.Errorf("append note: %w", err)
	}

	s.cache.Add(cacheKey(username, stored.ID), stored)
	s.log.Info("note saved", "note_id", stored.ID, "kind", stored.Kind,
		"saved_to_file", stored.SavedToFile)

	return stored, nil
}

// List возвращает записи пользователя, отфильтрованные по критериям.
// Порядок вставки сохраняется нижележащим хранилищем.
func (s *Service) List(ctx context.Context, username string, filter Filter) ([]*Note, error) {
	notes, err := s.repo.List(ctx, username)
	if err != nil {
		s.log.Error("failed to list notes", "user", username, "error", err)
		return nil, fmt.Errorf("list notes: %w", err)
	}

	filtered := make([]*Note, 0, len(notes))
	for _, n := range notes {
		ok, err := matches(n, filter)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
		if ok {
			filtered = append(filtered, n)
		}
	}

	return filtered, nil
}

// Find возвращает запись по идентификатору.
func (s *Service) Find(ctx context.Context, username, id string) (*Note, error) {
	if n, ok := s.cache.Get(cacheKey(username, id)); ok {
		return n, nil
	}

	n, err := s.repo.Get(ctx, username, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find note", "note_id", id, "user", username, "error", err)
		return nil, fmt.Errorf("find note: %w", err)
	}

	s.cache.Add(cacheKey(username, id), n)
	return n, nil
}

// Wipe необратимо удаляет все записи пользователя.
func (s *Service) Wipe(ctx context.Context, username string) error {
	if err := s.repo.Wipe(ctx, username); err != nil {
		s.log.Error("failed to wipe notes", "user", username, "error", err)
		return fmt.Errorf("wipe notes: %w", err)
	}

	s.cache.Purge()
	s.log.Info("notes wiped", "user", username)

	return nil
}

// Count возвращает количество записей пользователя.
func (s *Service) Count(ctx context.Context, username string) (int, error) {
	count, err := s.repo.Count(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return count, nil
}

func matches(n *Note, filter Filter) (bool, error) {
	if filter.Kind != "" && n.Kind != filter.Kind {
		return false, nil
	}

	if filter.Date != "" && n.CreatedAt.Format("2006-01-02") != filter.Date {
		return false, nil
	}

	if filter.TitleGlob != "" {
		ok, err := doublestar.Match(filter.TitleGlob, n.Title)
		if err != nil {
			return false, fmt.Errorf("bad title pattern %q: %v", filter.TitleGlob, err)
		}
		if !ok {
			return false, nil
		}
	}

	if filter.TagGlob != "" {
		found := false
		for _, tag := range n.Tags {
			ok, err := doublestar.Match(filter.TagGlob, tag)
			if err != nil {
				return false, fmt.Errorf("bad tag pattern %q: %v", filter.TagGlob, err)
			}
			if ok {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}

	return true, nil
}

func cacheKey(username, id string) string {
	return username + "/" + id
}
