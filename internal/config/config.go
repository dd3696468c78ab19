package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration, read once at process start.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
}

// DatabaseConfig holds the connection string and pool tuning knobs.
type DatabaseConfig struct {
	URL             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port           string
	LogLevel       slog.Level
	AllowedOrigins string
	PageCacheTTL   time.Duration
}

// Load reads configuration from environment variables. DATABASE_URL is the
// single required setting; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			LogLevel:       getEnvAsLevel("LOG_LEVEL", slog.LevelInfo),
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
			PageCacheTTL:   getEnvAsDuration("PAGE_CACHE_TTL", 30*time.Second),
		},
	}
	if cfg.Database.URL == "" {
		return nil, errors.New("DATABASE_URL environment variable not set")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsLevel(key string, defaultValue slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv(key)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return defaultValue
}
