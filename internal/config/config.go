// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	defaultAddr     = ":8080"
	defaultLogLevel = "info"
)

// Config holds the converter settings.
type Config struct {
	// Currency is the fallback reporting currency for statements without
	// an account currency.
	Currency  string
	Addr      string
	StaticDir string
	LogLevel  zapcore.Level
}

// Load reads envFile (if it exists) into the process environment and then
// builds a Config from it. Variables already set take precedence over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Currency:  strings.ToUpper(strings.TrimSpace(os.Getenv("CAMT_CURRENCY"))),
		Addr:      getenv("CAMT_ADDR", defaultAddr),
		StaticDir: os.Getenv("CAMT_STATIC_DIR"),
	}

	level, err := zapcore.ParseLevel(getenv("CAMT_LOG_LEVEL", defaultLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid CAMT_LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if cfg.Currency != "" && len(cfg.Currency) != 3 {
		return nil, fmt.Errorf("invalid CAMT_CURRENCY %q: expected a 3-letter ISO 4217 code", cfg.Currency)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
