package note

import (
	"fmt"
	"strings"
)

const maxTextLen = 10 * 1024 * 1024 // 10 MB

// TextBody - тело текстовой записи.
type TextBody struct {
	Content string `json:"content"`
}

func (t *TextBody) Kind() Kind {
	return KindText
}

func (t *TextBody) Validate() error {
	if strings.TrimSpace(t.Content) == "" {
		return fmt.Errorf("content is required")
	}

	if len(t.Content) > maxTextLen {
		return fmt.Errorf("text content too large (max 10MB)")
	}

	return nil
}

func (t *TextBody) Payload() []byte {
	return []byte(t.Content)
}
