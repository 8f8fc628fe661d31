// Package config holds application configuration: process-level settings
// from environment variables and per-repository settings from a
// .uilens.yaml file.
package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// Server
	Port int
	Env  string

	// Database (optional; the API persists models when set)
	DatabaseURL string

	// Analysis
	Strict   bool
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnvInt("PORT", 8080),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Strict:      getEnvBool("UILENS_STRICT", false),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
