// Package config holds process configuration populated from the
// environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the composition root needs to build the
// service.
type Config struct {
	Address         string
	BaseURL         string
	LogLevel        string
	CodeLength      int
	MaxCodeAttempts int
	ShutdownTimeout time.Duration
}

// New returns a Config with defaults for local development.
func New() *Config {
	return &Config{
		Address:         "localhost:8080",
		BaseURL:         "http://localhost:8080",
		LogLevel:        "info",
		CodeLength:      6,
		MaxCodeAttempts: 100,
		ShutdownTimeout: 30 * time.Second,
	}
}

// ParseEnv overrides config fields from environment variables. Unset or
// malformed values keep the defaults.
func ParseEnv(config *Config) {
	if address := os.Getenv("SERVER_ADDRESS"); address != "" {
		config.Address = address
	}
	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		config.BaseURL = baseURL
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.LogLevel = logLevel
	}
	if v := os.Getenv("CODE_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.CodeLength = n
		}
	}
	if v := os.Getenv("MAX_CODE_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.MaxCodeAttempts = n
		}
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.ShutdownTimeout = d
		}
	}
}
