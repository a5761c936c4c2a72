package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "PETCARE"

// Backends de key-value soportados.
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageSQLite   = "sqlite"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Demo    DemoConfig
	Chat    ChatConfig
}

type AppConfig struct {
	Name      string `envconfig:"PETCARE_APP_NAME" default:"petcare-marketplace"`
	Port      string `envconfig:"PETCARE_PORT" default:"8080"`
	LogLevel  string `envconfig:"PETCARE_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"PETCARE_LOG_FORMAT" default:"json"`
}

type StorageConfig struct {
	Driver      string `envconfig:"PETCARE_STORAGE" default:"memory"`
	FileDir     string `envconfig:"PETCARE_FILE_DIR" default:"./data"`
	DSN         string `envconfig:"PETCARE_DB_DSN"`
	RedisURL    string `envconfig:"PETCARE_REDIS_URL"`
	RedisPrefix string `envconfig:"PETCARE_REDIS_PREFIX" default:"petcare"`
	SQLitePath  string `envconfig:"PETCARE_SQLITE_PATH" default:"./data/petcare.db"`
}

// DemoConfig es el único par de credenciales aceptado por el login demo.
type DemoConfig struct {
	Email    string `envconfig:"PETCARE_DEMO_EMAIL" default:"demo@example.com"`
	Password string `envconfig:"PETCARE_DEMO_PASSWORD" default:"123456"`
}

type ChatConfig struct {
	MinDelay time.Duration `envconfig:"PETCARE_CHAT_MIN_DELAY" default:"1500ms"`
	MaxDelay time.Duration `envconfig:"PETCARE_CHAT_MAX_DELAY" default:"3500ms"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))

	switch c.Storage.Driver {
	case StorageMemory, StorageFile, StorageSQLite:
	case StoragePostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return fmt.Errorf("config: %s_DB_DSN is required for postgres storage", EnvPrefix)
		}
	case StorageRedis:
		if strings.TrimSpace(c.Storage.RedisURL) == "" {
			return fmt.Errorf("config: %s_REDIS_URL is required for redis storage", EnvPrefix)
		}
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}

	if c.Chat.MinDelay < 0 || c.Chat.MaxDelay < c.Chat.MinDelay {
		return fmt.Errorf("config: invalid chat delay range [%s, %s]", c.Chat.MinDelay, c.Chat.MaxDelay)
	}
	return nil
}

// Addr devuelve la dirección de escucha del servidor HTTP.
func (a AppConfig) Addr() string {
	if strings.HasPrefix(a.Port, ":") {
		return a.Port
	}
	return ":" + a.Port
}
