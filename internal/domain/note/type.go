package note

import (
	"fmt"
)

type Kind string

const (
	KindText  Kind = "text"
	KindAudio Kind = "audio"
	KindVideo Kind = "video"
)

// Validate проверяет, что тип записи поддерживается.
func (k Kind) Validate() error {
	switch k {
	case KindText, KindAudio, KindVideo:
		return nil
	}
	return fmt.Errorf("неверный тип записи: %s", k)
}

// String возвращает строковое представление типа.
func (k Kind) String() string {
	return string(k)
}

// DisplayName возвращает человекочитаемое название типа.
func (k Kind) DisplayName() string {
	switch k {
	case KindText:
		return "Текстовая запись"
	case KindAudio:
		return "Аудиозапись"
	case KindVideo:
		return "Видеозапись"
	default:
		return "Неизвестный тип"
	}
}

// Subfolder возвращает подпапку типа в директории экспорта.
func (k Kind) Subfolder() string {
	switch k {
	case KindAudio:
		return "Audio"
	case KindVideo:
		return "Video"
	default:
		return "Text"
	}
}

// Extension возвращает расширение файла при экспорте.
// Для аудио и видео расширения соответствуют реальному контейнеру
// (Opus/WebM), который создаёт рекордер.
func (k Kind) Extension() string {
	switch k {
	case KindAudio:
		return ".ogg"
	case KindVideo:
		return ".webm"
	default:
		return ".txt"
	}
}
