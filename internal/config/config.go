package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultURL is the published document the decoder reads when no other
// source is given.
const DefaultURL = "https://docs.google.com/document/d/e/2PACX-1vQGUck9HIFCyezsrBSnmENk5ieJuYwpt7YHYEzeNJkIb9OSDdx-ov2nRNReKQyey-cwJOoEKUhLmN9z/pub"

// DefaultMaxBytes caps the size of a fetched document.
const DefaultMaxBytes int64 = 10 << 20

type Config struct {
	URL      string
	Timeout  time.Duration // zero means no timeout
	MaxBytes int64
	LogLevel slog.Level
}

func Default() *Config {
	return &Config{
		URL:      DefaultURL,
		MaxBytes: DefaultMaxBytes,
		LogLevel: slog.LevelWarn,
	}
}

// Load returns the defaults overridden by any GDOCDECODE_* environment
// variables that are set.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv("GDOCDECODE_URL")); v != "" {
		cfg.URL = v
	}

	if v := strings.TrimSpace(getenv("GDOCDECODE_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("GDOCDECODE_TIMEOUT: %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("GDOCDECODE_TIMEOUT must not be negative, got %s", v)
		}
		cfg.Timeout = d
	}

	if v := strings.TrimSpace(getenv("GDOCDECODE_MAX_BYTES")); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("GDOCDECODE_MAX_BYTES: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("GDOCDECODE_MAX_BYTES must be positive, got %d", n)
		}
		cfg.MaxBytes = n
	}

	if v := strings.TrimSpace(getenv("GDOCDECODE_LOG_LEVEL")); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("GDOCDECODE_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}
