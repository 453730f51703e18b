// Package gateway implements the schedule Gateway over the remote
// phase/task HTTP API.
package gateway

import (
	"os"
	"strconv"
)

// Config holds all configuration for the remote schedule API client.
type Config struct {
	BaseURL    string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
}

// DefaultConfig returns a Config with sensible defaults. BaseURL is
// empty by default; the application falls back to the local store
// when no API is configured.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "",
		TimeoutMs:  8000,
		MaxRetries: 1,
		LogCalls:   false,
	}
}

// LoadConfig reads API configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GIRDER_API"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("GIRDER_API_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("GIRDER_API_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("GIRDER_LOG_API"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
