package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	LogFormat         string  `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel          string  `env:"LOG_LEVEL" envDefault:"info"`
	CatalogPath       string  `env:"CATALOG_PATH"`
	DocsAddr          string  `env:"DOCS_ADDR" envDefault:":8090"`
	WatermillLogLevel string  `env:"WATERMILL_LOG_LEVEL" envDefault:"off"`
	Tracing           Tracing `envPrefix:"PUBSUB_TRACING_"`
}

// Tracing configures OpenTelemetry spans on the message bus.
type Tracing struct {
	Enabled     bool   `env:"ENABLED"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"wscatalog"`
	ZipkinURL   string `env:"ZIPKIN_URL" envDefault:"http://localhost:9411/api/v2/spans"`
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment, which wins over file values. Missing .env files are
// not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	environ := make(map[string]string)
	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("no .env file found, relying on environment variables", "file", file)
				continue
			}
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		for k, v := range values {
			environ[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			environ[k] = v
		}
	}
	return Parse(environ)
}

// Parse builds a Config from an explicit environment.
func Parse(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if c.DocsAddr == "" {
		return errors.New("DOCS_ADDR must not be empty")
	}
	return nil
}
