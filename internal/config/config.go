package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Transport selects how the MCP server is exposed.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// DefaultBaseURL is the YNAB v1 API root.
const DefaultBaseURL = "https://api.youneedabudget.com/v1"

type Config struct {
	// YNAB upstream
	Token    string
	BudgetID string
	BaseURL  string

	// Per-call upstream timeout
	HTTPTimeout time.Duration

	// MCP transport
	Transport string
	Port      string // listen port for the SSE transport

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		Token:    getEnv("YNAB_TOKEN", ""),
		BudgetID: getEnv("YNAB_BUDGET_ID", ""),
		BaseURL:  getEnv("YNAB_BASE_URL", DefaultBaseURL),

		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 15*time.Second),

		Transport: getEnv("MCP_TRANSPORT", TransportStdio),
		Port:      getEnv("PORT", "8081"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Token and budget id are required before the process may start
	if c.Token == "" {
		errors = append(errors, "YNAB_TOKEN must be set")
	}
	if c.BudgetID == "" {
		errors = append(errors, "YNAB_BUDGET_ID must be set")
	}

	if parsedURL, err := url.Parse(c.BaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid base URL '%s': %v", c.BaseURL, err))
	} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid base URL scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
	}

	if c.HTTPTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %v: must be at least 1 second", c.HTTPTimeout))
	} else if c.HTTPTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %v: must be at most 5 minutes", c.HTTPTimeout))
	}

	if c.Transport != TransportStdio && c.Transport != TransportSSE {
		errors = append(errors, fmt.Sprintf("invalid transport '%s': must be '%s' or '%s'", c.Transport, TransportStdio, TransportSSE))
	}

	if c.Transport == TransportSSE {
		if port, err := strconv.Atoi(c.Port); err != nil {
			errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// SlogLevel maps the configured log level name to a slog level, defaulting
// to info for unknown names.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
