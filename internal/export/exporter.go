// Package export реализует вторичный путь сохранения записей:
// зеркалирование в подпапки выданной пользователем директории.
// Основным хранилищем всегда остается локальная база - при любой
// ошибке экспорта вызывающая сторона сохраняет запись целиком туда.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"dnevnik/internal/domain/note"
)

var ErrNotConfigured = errors.New("export directory is not configured")

// Subfolders - подпапки, создаваемые в корне директории экспорта,
// по одной на тип записи.
var Subfolders = []string{
	note.KindText.Subfolder(),
	note.KindAudio.Subfolder(),
	note.KindVideo.Subfolder(),
}

// DirectoryExporter пишет содержимое записи в файл внутри подпапки,
// соответствующей типу записи. Конструируется на время сеанса из
// настроек пользователя; глобального состояния нет.
type DirectoryExporter struct {
	root string
	log  *slog.Logger
}

func NewDirectoryExporter(root string, log *slog.Logger) *DirectoryExporter {
	return &DirectoryExporter{
		root: root,
		log:  log.With("component", "directory_exporter"),
	}
}

// Configured сообщает, выдана ли директория экспорта. Отсутствие
// директории - нормальное состояние "не настроено", а не ошибка.
func (e *DirectoryExporter) Configured() bool {
	return e.root != ""
}

// Init создает подпапки для каждого типа записи. Идемпотентна.
// Ошибка по одной подпапке логируется и не прерывает создание
// остальных.
func (e *DirectoryExporter) Init() error {
	if !e.Configured() {
		return ErrNotConfigured
	}

	if err := os.MkdirAll(e.root, 0700); err != nil {
		return fmt.Errorf("создание директории экспорта: %w", err)
	}

	var errs []error
	for _, sub := range Subfolders {
		if err := os.MkdirAll(filepath.Join(e.root, sub), 0700); err != nil {
			e.log.Warn("не удалось создать подпапку экспорта", "subfolder", sub, "error", err)
			errs = append(errs, fmt.Errorf("подпапка %s: %w", sub, err))
		}
	}

	return errors.Join(errs...)
}

// Export записывает содержимое в файл YYYY-MM-DD_SanitizedTitle.<ext>
// внутри подпапки типа и возвращает имя файла. Повторное сохранение с
// теми же датой, заголовком и типом молча перезаписывает файл. Запись
// атомарна: при ошибке частичный файл не остается на диске.
func (e *DirectoryExporter) Export(n *note.Note) (string, error) {
	if !e.Configured() {
		return "", ErrNotConfigured
	}

	info, err := os.Stat(e.root)
	if err != nil {
		return "", fmt.Errorf("директория экспорта недоступна: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("путь экспорта не является директорией: %s", e.root)
	}

	sub := filepath.Join(e.root, n.Kind.Subfolder())
	if err := os.MkdirAll(sub, 0700); err != nil {
		return "", fmt.Errorf("создание подпапки %s: %w", n.Kind.Subfolder(), err)
	}

	filename := note.ExportFilename(n.CreatedAt, n.Title, n.Kind)
	if err := writeFileAtomic(filepath.Join(sub, filename), n.Body.Payload(), 0600); err != nil {
		return "", fmt.Errorf("запись файла %s: %w", filename, err)
	}

	e.log.Debug("note exported", "note_id", n.ID, "filename", filename)
	return filename, nil
}

// Status возвращает наличие каждой подпапки в директории экспорта.
func (e *DirectoryExporter) Status() (map[string]bool, error) {
	if !e.Configured() {
		return nil, ErrNotConfigured
	}

	status := make(map[string]bool, len(Subfolders))
	for _, sub := range Subfolders {
		info, err := os.Stat(filepath.Join(e.root, sub))
		status[sub] = err == nil && info.IsDir()
	}

	return status, nil
}

// Root возвращает корень директории экспорта.
func (e *DirectoryExporter) Root() string {
	return e.root
}
