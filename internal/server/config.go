package server

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the HTTP adapter settings, parsed from the environment.
// CLI flags may overwrite individual fields after Load.
type Config struct {
	// Addr is the listen address.
	Addr string `env:"ATHENA_ADDR" envDefault:":8080"`

	// Database is the SQLite practice log path.
	Database string `env:"ATHENA_DB" envDefault:"athena.db"`

	// LogLevel is one of debug|info|warn|error.
	LogLevel string `env:"ATHENA_LOG_LEVEL" envDefault:"info"`

	// CacheSize bounds the conversion response cache.
	CacheSize int `env:"ATHENA_CACHE_SIZE" envDefault:"1024"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables win over .env entries.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Level maps the configured log level name onto a slog level. Unknown
// names mean info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
