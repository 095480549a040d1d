package backup

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"dnevnik/internal/domain/note"
	"dnevnik/internal/domain/settings"
)

// fakeNoteRepo - хранилище записей в памяти, сохраняющее порядок добавления.
type fakeNoteRepo struct {
	notes map[string][]*note.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string][]*note.Note)}
}

func (r *fakeNoteRepo) Append(_ context.Context, username string, n *note.Note) error {
	for _, existing := range r.notes[username] {
		if existing.ID == n.ID {
			return note.ErrDuplicateID
		}
	}
	r.notes[username] = append(r.notes[username], n)
	return nil
}

func (r *fakeNoteRepo) List(_ context.Context, username string) ([]*note.Note, error) {
	return r.notes[username], nil
}

func (r *fakeNoteRepo) Get(_ context.Context, username, id string) (*note.Note, error) {
	for _, n := range r.notes[username] {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, note.ErrNotFound
}

func (r *fakeNoteRepo) Wipe(_ context.Context, username string) error {
	delete(r.notes, username)
	return nil
}

func (r *fakeNoteRepo) Count(_ context.Context, username string) (int, error) {
	return len(r.notes[username]), nil
}

// fakeSettings - настройки в памяти с поведением реального сервиса:
// отсутствующие настройки заменяются значениями по умолчанию.
type fakeSettings struct {
	stored map[string]settings.Settings
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{stored: make(map[string]settings.Settings)}
}

func (f *fakeSettings) Get(_ context.Context, username string) (settings.Settings, error) {
	if cfg, ok := f.stored[username]; ok {
		return cfg, nil
	}
	return settings.Default(username), nil
}

func (f *fakeSettings) Save(_ context.Context, cfg settings.Settings) error {
	f.stored[cfg.Username] = cfg
	return nil
}

func (f *fakeSettings) Delete(_ context.Context, username string) error {
	delete(f.stored, username)
	return nil
}

func seedNotes(t *testing.T, repo *fakeNoteRepo, username string) []*note.Note {
	t.Helper()

	notes := []*note.Note{
		{
			ID:        "1",
			Title:     "Morning pages",
			Kind:      note.KindText,
			Body:      &note.TextBody{Content: "slept well"},
			CreatedAt: time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC),
			Tags:      []string{"daily"},
			Mood:      "calm",
		},
		{
			ID:        "2",
			Title:     "Voice memo",
			Kind:      note.KindAudio,
			Body:      &note.AudioBody{Data: []byte{0x4f, 0x67}, Duration: 30},
			CreatedAt: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Title:       "Birthday",
			Kind:        note.KindVideo,
			Body:        &note.VideoBody{Duration: 90},
			CreatedAt:   time.Date(2025, 1, 16, 19, 0, 0, 0, time.UTC),
			SavedToFile: true,
			Filename:    "2025-01-16_Birthday.webm",
		},
	}
	for _, n := range notes {
		require.NoError(t, repo.Append(context.Background(), username, n))
	}
	return notes
}

func TestExport(t *testing.T) {
	repo := newFakeNoteRepo()
	cfg := newFakeSettings()
	service := NewService(repo, cfg, slog.Default())

	seedNotes(t, repo, "alice")
	require.NoError(t, cfg.Save(context.Background(), settings.Settings{Username: "alice", Theme: "dark"}))

	doc, err := service.Export(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, Version, doc.Version)
	assert.Equal(t, "alice", doc.Username)
	assert.False(t, doc.ExportedAt.IsZero())
	assert.Equal(t, "dark", doc.Settings.Theme)
	require.Len(t, doc.Notes, 3)

	assert.Equal(t, "slept well", doc.Notes[0].Content)
	assert.Equal(t, []byte{0x4f, 0x67}, doc.Notes[1].Data)
	assert.Equal(t, 30, doc.Notes[1].Duration)

	// Теневая метазапись экспортируется без содержимого
	assert.True(t, doc.Notes[2].SavedToFile)
	assert.Empty(t, doc.Notes[2].Data)
	assert.Equal(t, "2025-01-16_Birthday.webm", doc.Notes[2].Filename)
}

func TestExportImportRoundTrip(t *testing.T) {
	srcRepo := newFakeNoteRepo()
	srcCfg := newFakeSettings()
	src := NewService(srcRepo, srcCfg, slog.Default())

	original := seedNotes(t, srcRepo, "alice")
	require.NoError(t, srcCfg.Save(context.Background(), settings.Settings{Username: "alice", Theme: "dark", AccentColor: "#ff0000"}))

	doc, err := src.Export(context.Background(), "alice")
	require.NoError(t, err)

	data, err := src.Marshal(doc)
	require.NoError(t, err)

	dstRepo := newFakeNoteRepo()
	dstCfg := newFakeSettings()
	dst := NewService(dstRepo, dstCfg, slog.Default())

	username, count, err := dst.Import(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
	assert.Equal(t, 3, count)

	restored, err := dstRepo.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, restored, 3)

	for i, n := range restored {
		assert.Equal(t, original[i].ID, n.ID)
		assert.Equal(t, original[i].Title, n.Title)
		assert.Equal(t, original[i].Kind, n.Kind)
		assert.Equal(t, original[i].Duration(), n.Duration())
		assert.True(t, original[i].CreatedAt.Equal(n.CreatedAt))
	}
	assert.Equal(t, []byte{0x4f, 0x67}, restored[1].Body.Payload())

	got, err := dstCfg.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, "#ff0000", got.AccentColor)
}

func TestImport_ReplacesExistingData(t *testing.T) {
	repo := newFakeNoteRepo()
	cfg := newFakeSettings()
	service := NewService(repo, cfg, slog.Default())

	stale := &note.Note{
		ID: "old", Title: "stale", Kind: note.KindText,
		Body: &note.TextBody{Content: "to be replaced"}, CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Append(context.Background(), "alice", stale))

	doc := &Document{
		Version:  Version,
		Username: "alice",
		Settings: settings.Default("alice"),
		Notes: []NoteRecord{
			{ID: "new", Title: "fresh", Kind: note.KindText, Content: "imported", CreatedAt: time.Now()},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	_, count, err := service.Import(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	notes, err := repo.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "new", notes[0].ID)
}

func TestImport_RejectsUnsupportedVersion(t *testing.T) {
	service := NewService(newFakeNoteRepo(), newFakeSettings(), slog.Default())

	data, err := json.Marshal(&Document{Version: "2.0", Username: "alice"})
	require.NoError(t, err)

	_, _, err = service.Import(context.Background(), data)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "версия")
}

func TestImport_RejectsMalformedJSON(t *testing.T) {
	service := NewService(newFakeNoteRepo(), newFakeSettings(), slog.Default())

	_, _, err := service.Import(context.Background(), []byte("{not json"))
	assert.Error(t, err)
}

func TestImport_RejectsMissingUsername(t *testing.T) {
	service := NewService(newFakeNoteRepo(), newFakeSettings(), slog.Default())

	data, err := json.Marshal(&Document{Version: Version})
	require.NoError(t, err)

	_, _, err = service.Import(context.Background(), data)
	assert.Error(t, err)
}

func TestImport_AllOrNothing(t *testing.T) {
	repo := newFakeNoteRepo()
	service := NewService(repo, newFakeSettings(), slog.Default())

	existing := seedNotes(t, repo, "alice")

	// Вторая запись некорректна: локальные данные должны остаться нетронутыми
	doc := &Document{
		Version:  Version,
		Username: "alice",
		Settings: settings.Default("alice"),
		Notes: []NoteRecord{
			{ID: "10", Title: "ok", Kind: note.KindText, Content: "x", CreatedAt: time.Now()},
			{ID: "11", Title: "broken", Kind: note.Kind("photo"), CreatedAt: time.Now()},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	_, _, err = service.Import(context.Background(), data)
	require.Error(t, err)

	notes, listErr := repo.List(context.Background(), "alice")
	require.NoError(t, listErr)
	assert.Len(t, notes, len(existing))
}

func TestImport_ShadowRecordWithoutPayload(t *testing.T) {
	repo := newFakeNoteRepo()
	service := NewService(repo, newFakeSettings(), slog.Default())

	doc := &Document{
		Version:  Version,
		Username: "alice",
		Settings: settings.Default("alice"),
		Notes: []NoteRecord{
			{
				ID: "1", Title: "Birthday", Kind: note.KindVideo,
				Duration: 90, CreatedAt: time.Now(),
				SavedToFile: true, Filename: "2025-01-16_Birthday.webm",
			},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	_, count, err := service.Import(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	n, err := repo.Get(context.Background(), "alice", "1")
	require.NoError(t, err)
	assert.True(t, n.SavedToFile)
	assert.Equal(t, 90, n.Duration())
}

func TestMarshal_BinaryAsBase64(t *testing.T) {
	service := NewService(newFakeNoteRepo(), newFakeSettings(), slog.Default())

	doc := &Document{
		Version:  Version,
		Username: "alice",
		Settings: settings.Default("alice"),
		Notes: []NoteRecord{
			{ID: "1", Title: "memo", Kind: note.KindAudio, Data: []byte("OggS"), Duration: 5, CreatedAt: time.Now()},
		},
	}

	data, err := service.Marshal(doc)
	require.NoError(t, err)

	// encoding/json кодирует []byte в base64: "OggS" -> "T2dnUw=="
	assert.Contains(t, string(data), "T2dnUw==")
}
