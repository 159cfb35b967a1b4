// Package config loads environment-driven configuration for both binaries.
package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	// DatabaseURL is the managed PostgreSQL endpoint (server binary).
	DatabaseURL string

	// DBPath is the embedded SQLite file (local binary).
	DBPath string
}

// Production reports whether session cookies should carry the Secure flag.
func (c Config) Production() bool {
	return c.Environment == "production"
}

// Load reads configuration for the managed-database server.
func Load() (Config, error) {
	cfg := loadCommon()
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	return cfg, nil
}

// LoadLocal reads configuration for the embedded-database server.
func LoadLocal() Config {
	cfg := loadCommon()
	cfg.DBPath = getEnv("CALENDAR_DB_PATH", "calendar.db")
	return cfg
}

func loadCommon() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
