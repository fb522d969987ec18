package config

import (
	"errors"
	"os"
	"time"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port        string
	AppEnv      string
	LogLevel    string
	DatabaseURL string
	JWTSecret   string
	JWTExpires  time.Duration
}

// Load reads the environment into a Config. A missing JWT_SECRET is a hard
// startup failure; a signing key must always be present and secret.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTExpires:  24 * time.Hour,
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.New("JWT_EXPIRES_IN must be a duration like 24h")
		}
		cfg.JWTExpires = d
	}

	return cfg, nil
}

// IsProduction controls error redaction and log formatting.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
