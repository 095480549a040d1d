package note

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "plain title",
			title:    "Morning",
			expected: "Morning",
		},
		{
			name:     "punctuation stripped",
			title:    "Hello, World!",
			expected: "Hello_World",
		},
		{
			name:     "whitespace runs collapsed",
			title:    "a   b\tc",
			expected: "a_b_c",
		},
		{
			name:     "leading and trailing spaces",
			title:    "  trip to the sea  ",
			expected: "trip_to_the_sea",
		},
		{
			name:     "digits kept",
			title:    "Day 42",
			expected: "Day_42",
		},
		{
			name:     "non-latin characters stripped",
			title:    "Запись #1 (draft)",
			expected: "1_draft",
		},
		{
			name:     "everything stripped",
			title:    "***",
			expected: "untitled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeTitle(tt.title))
		})
	}
}

func TestExportFilename(t *testing.T) {
	createdAt := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-01-15_Hello_World.txt",
		ExportFilename(createdAt, "Hello, World!", KindText))
	assert.Equal(t, "2025-01-15_Voice_memo.ogg",
		ExportFilename(createdAt, "Voice memo", KindAudio))
	assert.Equal(t, "2025-01-15_Birthday.webm",
		ExportFilename(createdAt, "Birthday", KindVideo))
}

func TestExportFilenameDeterministic(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 23, 59, 59, 0, time.UTC)

	first := ExportFilename(createdAt, "Same  title!", KindText)
	second := ExportFilename(createdAt, "Same  title!", KindText)

	assert.Equal(t, first, second)
}
