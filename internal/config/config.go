package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	StoreBackend      string // sqlite or memory
	DBPath            string
	APIPort           string
	LogLevel          slog.Level
	LogFormat         string
	StorageLimitBytes int64
	PageSize          int
	TrendDays         int
	RecentRecords     int
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates numeric ones.
// If a .env file exists in the current directory or a parent, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", "sqlite")),
		DBPath:       getEnv("DB_PATH", "./data/plantdiary.db"),
		APIPort:      getEnv("API_PORT", "9000"),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	if cfg.StoreBackend != "sqlite" && cfg.StoreBackend != "memory" {
		return nil, fmt.Errorf("STORE_BACKEND must be sqlite or memory, got %q", cfg.StoreBackend)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}

	limit, err := strconv.ParseInt(getEnv("STORAGE_LIMIT_BYTES", "10485760"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("STORAGE_LIMIT_BYTES must be a valid integer: %w", err)
	}
	if limit < 0 {
		return nil, fmt.Errorf("STORAGE_LIMIT_BYTES must not be negative")
	}
	cfg.StorageLimitBytes = limit

	if cfg.PageSize, err = positiveInt("PAGE_SIZE", "10"); err != nil {
		return nil, err
	}
	if cfg.TrendDays, err = positiveInt("TREND_DAYS", "7"); err != nil {
		return nil, err
	}
	if cfg.RecentRecords, err = positiveInt("RECENT_RECORDS", "5"); err != nil {
		return nil, err
	}

	// Create the data directory for the database file
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// positiveInt parses an integer environment variable that must be greater than 0.
func positiveInt(key, defaultValue string) (int, error) {
	n, err := strconv.Atoi(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return n, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
