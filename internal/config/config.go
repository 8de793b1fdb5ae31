package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

type Config struct {
	// Backend API
	APIURL     string
	APITimeout time.Duration

	// Session persistence
	SessionDBPath string

	// Export
	ExportSink          string
	ExportDir           string
	GoogleSpreadsheetID string
	GoogleSheetName     string

	// AMQP change notifications; empty URL disables them
	AMQPURL      string
	AMQPExchange string

	// Logging
	LogLevel  string
	LogFormat string
}

var validSinks = []string{"file", "sheets", "memory"}

func Load() *Config {
	return &Config{
		APIURL:     strings.TrimRight(getEnv("API_URL", "http://localhost:3000"), "/"),
		APITimeout: getEnvDuration("API_TIMEOUT", 30*time.Second),

		SessionDBPath: getEnv("SESSION_DB_PATH", "./data/session.db"),

		ExportSink:          getEnv("EXPORT_SINK", "file"),
		ExportDir:           getEnv("EXPORT_DIR", "."),
		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:     getEnv("GOOGLE_SHEET_NAME", "Transacciones"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "gaston"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if u, err := url.Parse(c.APIURL); err != nil || c.APIURL == "" {
		errors = append(errors, fmt.Sprintf("invalid API URL '%s'", c.APIURL))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	}

	if c.APITimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid API timeout %v: must be at least 1 second", c.APITimeout))
	} else if c.APITimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid API timeout %v: must be at most 5 minutes", c.APITimeout))
	}

	if c.SessionDBPath == "" {
		errors = append(errors, "session database path cannot be empty")
	} else {
		dir := filepath.Dir(c.SessionDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create session database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if !slices.Contains(validSinks, c.ExportSink) {
		errors = append(errors, fmt.Sprintf("invalid export sink '%s': must be one of %v", c.ExportSink, validSinks))
	}

	if c.ExportSink == "sheets" {
		if c.GoogleSpreadsheetID == "" {
			errors = append(errors, "Google Spreadsheet ID is required when using sheets export")
		}
		if c.GoogleSheetName == "" {
			errors = append(errors, "Google Sheet name is required when using sheets export")
		}
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
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
