package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	gosync "sync"
	"time"

	"golang.org/x/exp/slog"

	"dnevnik/internal/app/client/config"
	"dnevnik/internal/backup"
	"dnevnik/internal/domain/note"
	"dnevnik/internal/domain/settings"
	"dnevnik/internal/domain/user"
	"dnevnik/internal/export"
	"dnevnik/internal/infrastructure/migration"
	"dnevnik/internal/infrastructure/storage/sqlite"
)

// App - контекст приложения на время сеанса. Все операции над записями
// выполняются от имени пользователя из файла сеанса; экспортер
// конструируется явно из настроек этого пользователя, глобального
// состояния нет.
type App struct {
	config   *config.Config
	log      *slog.Logger
	storage  *sqlite.Storage
	notes    *note.Service
	users    *user.Service
	settings *settings.Service
	backup   *backup.Service
	state    *AppState
	mu       gosync.RWMutex
}

// AppState хранит состояние приложения
type AppState struct {
	Initialized    bool      `json:"initialized"`
	UserLogin      string    `json:"user_login"`
	NotesCount     int       `json:"notes_count"`
	ExportDirReady bool      `json:"export_dir_ready"`
	LastBackup     time.Time `json:"last_backup,omitempty"`
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	state, err := loadAppState(cfg)
	if err != nil {
		log.Warn("Не удалось загрузить состояние приложения", "error", err)
		state = &AppState{}
	}

	// Применяем миграции локальной базы
	mg := migration.NewMigration(cfg.DataPath, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("ошибка миграции базы данных: %w", err)
	}

	storage, err := sqlite.New(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации хранилища: %w", err)
	}

	noteSvc, err := note.NewService(sqlite.NewNoteRepository(storage), log)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("ошибка инициализации сервиса записей: %w", err)
	}

	settingsSvc := settings.NewService(sqlite.NewSettingsRepository(storage), log)
	userSvc := user.NewService(sqlite.NewUserRepository(storage), user.NewCredentialsValidator(), log)
	backupSvc := backup.NewService(sqlite.NewNoteRepository(storage), settingsSvc, log)

	return &App{
		config:   cfg,
		log:      log,
		storage:  storage,
		notes:    noteSvc,
		users:    userSvc,
		settings: settingsSvc,
		backup:   backupSvc,
		state:    state,
	}, nil
}

func (a *App) Close() error {
	return a.storage.Close()
}

func loadAppState(cfg *config.Config) (*AppState, error) {
	if _, err := os.Stat(cfg.StatePath); os.IsNotExist(err) {
		return &AppState{}, nil
	}

	data, err := os.ReadFile(cfg.StatePath)
	if err != nil {
		return nil, err
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

func (a *App) saveAppState() error {
	data, err := json.MarshalIndent(a.state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(a.config.StatePath, data, 0600)
}

// IsInitialized проверяет, инициализирован ли клиент
func (a *App) IsInitialized() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state.Initialized
}

// InitStorage помечает хранилище инициализированным и обновляет счетчик записей.
func (a *App) InitStorage(ctx context.Context) error {
	username, _ := a.CurrentUser()

	count := 0
	if username != "" {
		var err error
		count, err = a.notes.Count(ctx, username)
		if err != nil {
			return fmt.Errorf("ошибка инициализации хранилища: %w", err)
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.Initialized = true
	a.state.NotesCount = count

	return a.saveAppState()
}

// ==================== Пользователь и сеанс ====================

// Register регистрирует нового пользователя
func (a *App) Register(ctx context.Context, username, password string) error {
	return a.users.Register(ctx, username, password)
}

// Login проверяет учетные данные и открывает сеанс
func (a *App) Login(ctx context.Context, username, password string) error {
	if _, err := a.users.Authenticate(ctx, username, password); err != nil {
		return err
	}

	if err := os.WriteFile(a.config.SessionPath, []byte(username), 0600); err != nil {
		return fmt.Errorf("ошибка сохранения сеанса: %w", err)
	}

	a.mu.Lock()
	a.state.UserLogin = username
	if err := a.saveAppState(); err != nil {
		a.mu.Unlock()
		a.log.Warn("Не удалось сохранить состояние", "error", err)
		return nil
	}
	a.mu.Unlock()

	a.log.Info("Вход выполнен успешно", "username", username)
	return nil
}

// Logout закрывает текущий сеанс
func (a *App) Logout() error {
	a.mu.Lock()
	a.state.UserLogin = ""

	if err := os.Remove(a.config.SessionPath); err != nil && !os.IsNotExist(err) {
		a.mu.Unlock()
		return fmt.Errorf("ошибка удаления сеанса: %w", err)
	}

	if err := a.saveAppState(); err != nil {
		a.mu.Unlock()
		return fmt.Errorf("ошибка сохранения состояния: %w", err)
	}
	a.mu.Unlock()

	return nil
}

// CurrentUser возвращает пользователя текущего сеанса
func (a *App) CurrentUser() (string, error) {
	data, err := os.ReadFile(a.config.SessionPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("сеанс не найден. Выполните вход: dnevnik auth login")
		}
		return "", fmt.Errorf("ошибка чтения сеанса: %w", err)
	}
	return string(data), nil
}

// ChangePassword меняет пароль текущего пользователя
func (a *App) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	username, err := a.CurrentUser()
	if err != nil {
		return err
	}

	return a.users.ChangePassword(ctx, username, oldPassword, newPassword)
}

// ==================== Записи ====================

// exporterFor конструирует экспортер на время операции из настроек
// пользователя. Пустая директория означает "экспорт не настроен".
func (a *App) exporterFor(ctx context.Context, username string) (*export.DirectoryExporter, error) {
	cfg, err := a.settings.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	dir := cfg.ExportDir
	if dir == "" {
		dir = a.config.ExportDir
	}

	return export.NewDirectoryExporter(dir, a.log), nil
}

// SaveNote сохраняет запись: сперва попытка экспорта в файл, при любой
// ошибке - полное сохранение в хранилище.
func (a *App) SaveNote(ctx context.Context, n *note.Note) (*note.Note, error) {
	username, err := a.CurrentUser()
	if err != nil {
		return nil, err
	}

	exporter, err := a.exporterFor(ctx, username)
	if err != nil {
		return nil, err
	}

	saved, err := a.notes.Save(ctx, username, n, exporter)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.state.NotesCount++
	if err := a.saveAppState(); err != nil {
		a.log.Warn("Не удалось сохранить состояние", "error", err)
	}
	a.mu.Unlock()

	return saved, nil
}

// ListNotes возвращает записи текущего пользователя
func (a *App) ListNotes(ctx context.Context, filter note.Filter) ([]*note.Note, error) {
	username, err := a.CurrentUser()
	if err != nil {
		return nil, err
	}

	return a.notes.List(ctx, username, filter)
}

// GetNote возвращает запись по идентификатору
func (a *App) GetNote(ctx context.Context, id string) (*note.Note, error) {
	username, err := a.CurrentUser()
	if err != nil {
		return nil, err
	}

	return a.notes.Find(ctx, username, id)
}

// Wipe необратимо удаляет все записи и настройки текущего пользователя
func (a *App) Wipe(ctx context.Context) error {
	username, err := a.CurrentUser()
	if err != nil {
		return err
	}

	if err := a.notes.Wipe(ctx, username); err != nil {
		return err
	}

	if err := a.settings.Delete(ctx, username); err != nil {
		return err
	}

	a.mu.Lock()
	a.state.NotesCount = 0
	a.state.ExportDirReady = false
	if err := a.saveAppState(); err != nil {
		a.log.Warn("Не удалось сохранить состояние", "error", err)
	}
	a.mu.Unlock()

	a.log.Info("Данные пользователя удалены", "username", username)
	return nil
}

// ==================== Директория экспорта ====================

// InitExportDir сохраняет директорию экспорта в настройках и создает
// подпапки типов.
func (a *App) InitExportDir(ctx context.Context, dir string) error {
	username, err := a.CurrentUser()
	if err != nil {
		return err
	}

	cfg, err := a.settings.Get(ctx, username)
	if err != nil {
		return err
	}

	cfg.ExportDir = dir
	if err := a.settings.Save(ctx, cfg); err != nil {
		return err
	}

	exporter := export.NewDirectoryExporter(dir, a.log)
	if err := exporter.Init(); err != nil {
		return err
	}

	a.mu.Lock()
	a.state.ExportDirReady = true
	if err := a.saveAppState(); err != nil {
		a.log.Warn("Не удалось сохранить состояние", "error", err)
	}
	a.mu.Unlock()

	return nil
}

// ExportStatus возвращает корень директории экспорта и наличие подпапок
func (a *App) ExportStatus(ctx context.Context) (string, map[string]bool, error) {
	username, err := a.CurrentUser()
	if err != nil {
		return "", nil, err
	}

	exporter, err := a.exporterFor(ctx, username)
	if err != nil {
		return "", nil, err
	}

	if !exporter.Configured() {
		return "", nil, export.ErrNotConfigured
	}

	status, err := exporter.Status()
	if err != nil {
		return "", nil, err
	}

	return exporter.Root(), status, nil
}

// ==================== Настройки ====================

// GetSettings возвращает настройки текущего пользователя
func (a *App) GetSettings(ctx context.Context) (settings.Settings, error) {
	username, err := a.CurrentUser()
	if err != nil {
		return settings.Settings{}, err
	}

	return a.settings.Get(ctx, username)
}

// SaveSettings сохраняет настройки текущего пользователя
func (a *App) SaveSettings(ctx context.Context, cfg settings.Settings) error {
	username, err := a.CurrentUser()
	if err != nil {
		return err
	}

	cfg.Username = username
	return a.settings.Save(ctx, cfg)
}

// ==================== Резервная копия ====================

// BackupExport собирает документ экспорта текущего пользователя
func (a *App) BackupExport(ctx context.Context) ([]byte, int, error) {
	username, err := a.CurrentUser()
	if err != nil {
		return nil, 0, err
	}

	doc, err := a.backup.Export(ctx, username)
	if err != nil {
		return nil, 0, err
	}

	data, err := a.backup.Marshal(doc)
	if err != nil {
		return nil, 0, err
	}

	a.mu.Lock()
	a.state.LastBackup = time.Now()
	if err := a.saveAppState(); err != nil {
		a.log.Warn("Не удалось сохранить состояние", "error", err)
	}
	a.mu.Unlock()

	return data, len(doc.Notes), nil
}

// BackupImport заменяет локальные данные содержимым документа
func (a *App) BackupImport(ctx context.Context, data []byte) (string, int, error) {
	username, count, err := a.backup.Import(ctx, data)
	if err != nil {
		return "", 0, err
	}

	a.mu.Lock()
	a.state.NotesCount = count
	if err := a.saveAppState(); err != nil {
		a.log.Warn("Не удалось сохранить состояние", "error", err)
	}
	a.mu.Unlock()

	return username, count, nil
}
