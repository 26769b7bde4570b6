package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Content source
	Source      string // "embedded", "dir", "http"
	DocsDir     string
	DocsBaseURL string
	MaxRetries  int

	// HTTP server
	HTTPPort      string
	APIKey        string
	RatePerSecond float64
	RateBurst     int

	// Logging
	LogLevel string
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Source:        "embedded",
		MaxRetries:    2,
		HTTPPort:      "8080",
		RatePerSecond: 10.0,
		RateBurst:     20,
		LogLevel:      "info",
	}
}

// LoadFromEnv loads .env file (if present) then overrides config from environment variables.
func (c *Config) LoadFromEnv() {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	if v := os.Getenv("DOCDECK_SOURCE"); v != "" {
		c.Source = v
	}
	if v := os.Getenv("DOCDECK_DOCS_DIR"); v != "" {
		c.DocsDir = v
	}
	if v := os.Getenv("DOCDECK_DOCS_BASE_URL"); v != "" {
		c.DocsBaseURL = v
	}
	if v := os.Getenv("DOCDECK_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRetries = n
		}
	}
	if v := os.Getenv("DOCDECK_RATE_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RatePerSecond = f
		}
	}
	if v := os.Getenv("DOCDECK_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateBurst = n
		}
	}
	if v := os.Getenv("DOCDECK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.HTTPPort = v
	}
	if v := os.Getenv("DOCDECK_API_KEY"); v != "" {
		c.APIKey = v
	}
}
