package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Catalog seed: empty for the built-in dataset, otherwise a .db/.sqlite
	// or .yaml/.yml file.
	CatalogSource string

	// Directory holding a prebuilt web client. Empty serves the embedded one.
	StaticDir string

	CORSAllowedOrigins []string
	LogLevel           slog.Level
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (*Config, error) {
	shutdown, err := durationDefault(getenv, "SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getenvDefault(getenv, "LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}

	return &Config{
		ServerAddress:      getenvDefault(getenv, "SERVER_ADDRESS", ":8001"),
		ShutdownTimeout:    shutdown,
		CatalogSource:      getenv("CATALOG_SOURCE"),
		StaticDir:          getenv("STATIC_DIR"),
		CORSAllowedOrigins: splitList(getenvDefault(getenv, "CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           level,
	}, nil
}

func durationDefault(getenv func(string) string, k string, fallback time.Duration) (time.Duration, error) {
	v := getenv(k)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a valid duration: %w", k, v, err)
	}
	return d, nil
}

func getenvDefault(getenv func(string) string, k, fallback string) string {
	if v := getenv(k); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
