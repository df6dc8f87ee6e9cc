package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"CAMT_CURRENCY", "CAMT_ADDR", "CAMT_STATIC_DIR", "CAMT_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Currency)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "", cfg.StaticDir)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("CAMT_CURRENCY", " eur ")
	t.Setenv("CAMT_ADDR", ":9090")
	t.Setenv("CAMT_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CAMT_CURRENCY=CHF\nCAMT_STATIC_DIR=web/dist\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "CHF", cfg.Currency)
	assert.Equal(t, "web/dist", cfg.StaticDir)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad currency", "CAMT_CURRENCY", "EURO"},
		{"bad log level", "CAMT_LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}
