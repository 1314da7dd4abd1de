package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "FLASK_ENV", "ENVIRONMENT", "HOST", "PORT", "DATABASE_URL",
		"ENABLE_DB_CHECK", "PAGINATION_SIZE", "MAX_CONTENT_LENGTH", "CORS_ORIGINS",
		"LOG_LEVEL", "RATE_LIMIT", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, "127.0.0.1:5000", cfg.Addr())
	assert.Equal(t, "sqlite://expenses_dev.db", cfg.DatabaseURL)
	assert.Equal(t, 20, cfg.PaginationSize)
	assert.Equal(t, int64(16*1024*1024), cfg.MaxContentLength)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.RateLimit)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_TestingEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("FLASK_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvTesting, cfg.Environment)
	assert.True(t, cfg.IsTesting)
	assert.Equal(t, 5, cfg.PaginationSize)
	assert.Equal(t, int64(1024*1024), cfg.MaxContentLength)
	assert.Equal(t, "sqlite://:memory:", cfg.DatabaseURL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("ENVIRONMENT", "testing")
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/expenses")
	t.Setenv("PAGINATION_SIZE", "50")
	t.Setenv("MAX_CONTENT_LENGTH", "2097152")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT", "100-M")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 50, cfg.PaginationSize)
	assert.Equal(t, int64(2097152), cfg.MaxContentLength)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "postgres://app:xxxxx@db:5432/expenses", cfg.RedactedDatabaseURL())
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"PAGINATION_SIZE":    "abc",
		"MAX_CONTENT_LENGTH": "-1",
		"LOG_LEVEL":          "loud",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestResolveEnvironment(t *testing.T) {
	assert.Equal(t, EnvDevelopment, resolveEnvironment("", "", ""))
	assert.Equal(t, EnvProduction, resolveEnvironment(" PROD ", "test"))
	assert.Equal(t, EnvTesting, resolveEnvironment("", "testing"))
	assert.Equal(t, EnvDevelopment, resolveEnvironment("staging"))
}
