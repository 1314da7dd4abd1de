package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment names.
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

const (
	defaultPaginationSize   = 20
	defaultMaxContentLength = 16 * 1024 * 1024
	testingPaginationSize   = 5
	testingMaxContentLength = 1024 * 1024
)

var envAliases = map[string]string{
	"dev":         EnvDevelopment,
	"development": EnvDevelopment,
	"test":        EnvTesting,
	"testing":     EnvTesting,
	"prod":        EnvProduction,
	"production":  EnvProduction,
}

var defaultDatabaseURLs = map[string]string{
	EnvDevelopment: "sqlite://expenses_dev.db",
	EnvTesting:     "sqlite://:memory:",
	EnvProduction:  "sqlite://expenses.db",
}

// Config holds application configuration.
type Config struct {
	Environment      string
	IsProduction     bool
	IsTesting        bool
	Host             string
	Port             string
	DatabaseURL      string
	EnableDBCheck    bool
	PaginationSize   int
	MaxContentLength int64
	CORSOrigins      []string
	LogLevel         slog.Level
	RateLimit        string
	ShutdownTimeout  time.Duration
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_ENV", "")
	v.SetDefault("FLASK_ENV", "")
	v.SetDefault("ENVIRONMENT", "")
	v.SetDefault("HOST", "127.0.0.1")
	v.SetDefault("PORT", "5000")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("PAGINATION_SIZE", "")
	v.SetDefault("MAX_CONTENT_LENGTH", "")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.AutomaticEnv()

	cfg := &Config{}
	cfg.Environment = resolveEnvironment(v.GetString("APP_ENV"), v.GetString("FLASK_ENV"), v.GetString("ENVIRONMENT"))
	cfg.IsProduction = cfg.Environment == EnvProduction
	cfg.IsTesting = cfg.Environment == EnvTesting

	cfg.Host = v.GetString("HOST")
	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "5000"
		slog.Warn("PORT environment variable not set", slog.String("default", cfg.Port))
	}

	cfg.DatabaseURL = v.GetString("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDatabaseURLs[cfg.Environment]
	}
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")

	var err error
	if cfg.PaginationSize, err = intSetting(v, "PAGINATION_SIZE", environmentDefault(cfg.IsTesting, testingPaginationSize, defaultPaginationSize)); err != nil {
		return nil, err
	}
	if cfg.PaginationSize < 1 || cfg.PaginationSize > 100 {
		return nil, fmt.Errorf("PAGINATION_SIZE must be between 1 and 100, got %d", cfg.PaginationSize)
	}

	maxContent, err := intSetting(v, "MAX_CONTENT_LENGTH", environmentDefault(cfg.IsTesting, testingMaxContentLength, defaultMaxContentLength))
	if err != nil {
		return nil, err
	}
	if maxContent <= 0 {
		return nil, fmt.Errorf("MAX_CONTENT_LENGTH must be positive, got %d", maxContent)
	}
	cfg.MaxContentLength = int64(maxContent)

	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg.RateLimit = strings.TrimSpace(v.GetString("RATE_LIMIT"))

	shutdownStr := v.GetString("SHUTDOWN_TIMEOUT")
	cfg.ShutdownTimeout, err = time.ParseDuration(shutdownStr)
	if err != nil || cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
		slog.Warn("Invalid value for SHUTDOWN_TIMEOUT", slog.String("value", shutdownStr), slog.Duration("default", cfg.ShutdownTimeout))
	}

	return cfg, nil
}

func resolveEnvironment(candidates ...string) string {
	for _, c := range candidates {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if env, ok := envAliases[c]; ok {
			return env
		}
		slog.Warn("Unknown environment name, using development", slog.String("value", c))
		return EnvDevelopment
	}
	return EnvDevelopment
}

func environmentDefault(testing bool, testingValue, value int) int {
	if testing {
		return testingValue
	}
	return value
}

func intSetting(v *viper.Viper, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// RedactedDatabaseURL hides any password in the database URL.
func (c *Config) RedactedDatabaseURL() string {
	u, err := url.Parse(c.DatabaseURL)
	if err != nil || u.User == nil {
		return c.DatabaseURL
	}
	return u.Redacted()
}

// Settings lists the effective configuration as name/value pairs for display.
func (c *Config) Settings() [][]string {
	rateLimit := c.RateLimit
	if rateLimit == "" {
		rateLimit = "disabled"
	}
	return [][]string{
		{"APP_ENV", c.Environment},
		{"HOST", c.Host},
		{"PORT", c.Port},
		{"DATABASE_URL", c.RedactedDatabaseURL()},
		{"ENABLE_DB_CHECK", strconv.FormatBool(c.EnableDBCheck)},
		{"PAGINATION_SIZE", strconv.Itoa(c.PaginationSize)},
		{"MAX_CONTENT_LENGTH", strconv.FormatInt(c.MaxContentLength, 10)},
		{"CORS_ORIGINS", strings.Join(c.CORSOrigins, ",")},
		{"LOG_LEVEL", c.LogLevel.String()},
		{"RATE_LIMIT", rateLimit},
		{"SHUTDOWN_TIMEOUT", c.ShutdownTimeout.String()},
	}
}
