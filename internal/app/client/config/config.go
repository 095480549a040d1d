package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultEnv       = EnvLocal
	defaultLogLevel  = "info"
	defaultConfigDir = ".dnevnik"
	defaultDBFile    = "dnevnik.db"
)

type Config struct {
	Env         string `mapstructure:"app_env"`
	LogLevel    string `mapstructure:"log_level"`
	ConfigDir   string `mapstructure:"config_dir"`
	DataPath    string `mapstructure:"data_path"`
	SessionPath string `mapstructure:"session_path"`
	StatePath   string `mapstructure:"state_path"`
	ExportDir   string `mapstructure:"export_dir"`
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		// Пробуем найти .env в родительской директории
		envPath = "../.env"
	}

	// Загружаем .env файл если существует
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("EXPORT_DIR", "")

	// Получаем домашнюю директорию пользователя
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	// Вычисляем пути для хранения данных
	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	// Создаем директории если их нет
	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("Ошибка создания директории конфигурации: %v\n", err)
	}

	dataPath := viper.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, defaultDBFile)
	}

	config := &Config{
		Env:         viper.GetString("APP_ENV"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		ConfigDir:   configDir,
		DataPath:    dataPath,
		SessionPath: filepath.Join(configDir, "session"),
		StatePath:   filepath.Join(configDir, "state.json"),
		ExportDir:   viper.GetString("EXPORT_DIR"),
	}

	// Валидация конфигурации
	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.ConfigDir == "" {
		return fmt.Errorf("config_dir не может быть пустым")
	}
	if c.DataPath == "" {
		return fmt.Errorf("data_path не может быть пустым")
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsDev проверяет, dev ли окружение
func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
