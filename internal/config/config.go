// Package config reads the service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseURL string
	Port        string

	JWTSecret   string
	JWTLifetime time.Duration

	FirstSuperuserEmail    string
	FirstSuperuserPassword string

	// Service-account credentials and the account the generated report
	// spreadsheet is shared with. Reporting stays disabled when unset.
	GoogleCredentialsFile string
	GoogleShareEmail      string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		Port:                   getEnv("PORT", "8080"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		FirstSuperuserEmail:    os.Getenv("FIRST_SUPERUSER_EMAIL"),
		FirstSuperuserPassword: os.Getenv("FIRST_SUPERUSER_PASSWORD"),
		GoogleCredentialsFile:  os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		GoogleShareEmail:       os.Getenv("GOOGLE_SHARE_EMAIL"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not defined in the environment")
	}

	lifetime := getEnv("JWT_LIFETIME_MINUTES", "60")
	minutes, err := strconv.Atoi(lifetime)
	if err != nil || minutes <= 0 {
		return nil, fmt.Errorf("invalid JWT_LIFETIME_MINUTES: %q", lifetime)
	}
	cfg.JWTLifetime = time.Duration(minutes) * time.Minute

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
