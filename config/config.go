package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/Dosada05/roster-graphql/db"
)

var ErrDatabaseURLMissing = errors.New("DATABASE_URL environment variable is not set")

// Config holds every setting the server reads at start.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	ServerPort  int    `env:"SERVER_PORT" env-default:"8080"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`

	DB       DBConfig
	GraphQL  GraphQLConfig
	HTTP     HTTPConfig
	Shutdown time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"15s"`
}

type DBConfig struct {
	ConnMode        string        `env:"DB_CONN_MODE" env-default:"pool"`
	ConnectTimeout  time.Duration `env:"DB_CONNECT_TIMEOUT" env-default:"5s"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"25"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"5m"`
}

type GraphQLConfig struct {
	MaxParallelism int `env:"GRAPHQL_MAX_PARALLELISM" env-default:"10"`
}

type HTTPConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

// Load reads the configuration from the environment.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	c.DatabaseURL = strings.TrimSpace(c.DatabaseURL)
	if c.DatabaseURL == "" {
		return ErrDatabaseURLMissing
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort)
	}

	c.DB.ConnMode = strings.ToLower(strings.TrimSpace(c.DB.ConnMode))
	switch c.DB.ConnMode {
	case db.ModePool, db.ModeDial:
	default:
		return fmt.Errorf("DB_CONN_MODE must be %q or %q, got %q", db.ModePool, db.ModeDial, c.DB.ConnMode)
	}

	if c.DB.ConnectTimeout <= 0 {
		return fmt.Errorf("DB_CONNECT_TIMEOUT must be positive, got %s", c.DB.ConnectTimeout)
	}
	if c.GraphQL.MaxParallelism <= 0 {
		return fmt.Errorf("GRAPHQL_MAX_PARALLELISM must be positive, got %d", c.GraphQL.MaxParallelism)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// ParseLogLevel maps LOG_LEVEL values onto slog levels.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown LOG_LEVEL %q", level)
	}
}
