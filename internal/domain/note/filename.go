package note

import (
	"regexp"
	"strings"
	"time"
)

var (
	nonAlnumRe   = regexp.MustCompile(`[^A-Za-z0-9 ]+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// SanitizeTitle приводит заголовок к безопасному имени файла:
// удаляет всё, кроме латинских букв, цифр и пробелов, и сворачивает
// последовательности пробелов в одиночное подчеркивание.
func SanitizeTitle(title string) string {
	s := nonAlnumRe.ReplaceAllString(title, "")
	s = strings.TrimSpace(s)
	s = whitespaceRe.ReplaceAllString(s, "_")

	if s == "" {
		return "untitled"
	}

	return s
}

// ExportFilename возвращает детерминированное имя файла экспорта:
// YYYY-MM-DD_SanitizedTitle.<ext>. Коллизии не обрабатываются - повторное
// сохранение с той же датой, заголовком и типом молча перезаписывает файл.
func ExportFilename(createdAt time.Time, title string, kind Kind) string {
	return createdAt.Format("2006-01-02") + "_" + SanitizeTitle(title) + kind.Extension()
}
