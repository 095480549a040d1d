package note

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Note - одна запись дневника. Тело записи зависит от типа и
// моделируется вариантным типом Body, а не структурой с необязательными
// полями: ровно один вариант осмыслен для каждой записи.
type Note struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Kind        Kind      `json:"kind"`
	Body        Body      `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	Tags        []string  `json:"tags,omitempty"`
	Mood        string    `json:"mood,omitempty"`
	SavedToFile bool      `json:"saved_to_file"`
	Filename    string    `json:"filename,omitempty"`
}

// Body - данные записи конкретного типа.
type Body interface {
	Kind() Kind
	Validate() error
	// Payload возвращает содержимое для экспорта в файл:
	// UTF-8 текст для текстовых записей, сырые байты для медиа.
	Payload() []byte
}

// NewID возвращает новый идентификатор записи, производный от времени
// создания. Уникальность в пределах коллекции пользователя обеспечивается
// наносекундным разрешением.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixNano(), 10)
}

// Validate проверяет инварианты записи перед сохранением.
func (n *Note) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidData)
	}

	if err := n.Kind.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	if n.Body == nil {
		return fmt.Errorf("%w: body is required", ErrInvalidData)
	}

	if n.Body.Kind() != n.Kind {
		return fmt.Errorf("%w: body kind %s does not match note kind %s",
			ErrInvalidData, n.Body.Kind(), n.Kind)
	}

	if err := n.Body.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	return nil
}

// Duration возвращает длительность в целых секундах для аудио и видео,
// 0 для текстовых записей.
func (n *Note) Duration() int {
	switch b := n.Body.(type) {
	case *AudioBody:
		return b.Duration
	case *VideoBody:
		return b.Duration
	default:
		return 0
	}
}

// Shadow возвращает копию записи без встроенного содержимого - теневую
// метазапись, которая сохраняется в хранилище после успешного экспорта
// в файл. Длительность сохраняется, содержимое и миниатюра - нет.
func (n *Note) Shadow(filename string) *Note {
	shadow := *n
	shadow.SavedToFile = true
	shadow.Filename = filename

	switch b := n.Body.(type) {
	case *TextBody:
		shadow.Body = &TextBody{}
	case *AudioBody:
		shadow.Body = &AudioBody{Duration: b.Duration}
	case *VideoBody:
		shadow.Body = &VideoBody{Duration: b.Duration}
	}

	return &shadow
}
