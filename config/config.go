// Package config loads the word history service configuration from the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration
type Config struct {
	Port           string  // HTTP listen port
	ResultsFile    string  // Result set supplied by the host; empty means none
	CollectionID   string  // Collection used in document detail links
	ViewCacheSize  int     // Maximum number of live page views
	DrilldownRate  float64 // Breakdown requests per second per client
	DrilldownBurst int     // Breakdown request burst per client
	LogLevel       string
	LogOTel        bool // Export logs through OpenTelemetry
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	config := &Config{
		Port:           getEnv("PORT", "8080"),
		ResultsFile:    getEnv("RESULTS_FILE", ""),
		CollectionID:   getEnv("COLLECTION_ID", "morpheus"),
		ViewCacheSize:  256,
		DrilldownRate:  10,
		DrilldownBurst: 20,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	if v := getEnv("VIEW_CACHE_SIZE", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid VIEW_CACHE_SIZE format: %w", err)
		}
		config.ViewCacheSize = n
	}

	if v := getEnv("DRILLDOWN_RATE", ""); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DRILLDOWN_RATE format: %w", err)
		}
		config.DrilldownRate = r
	}

	if v := getEnv("DRILLDOWN_BURST", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DRILLDOWN_BURST format: %w", err)
		}
		config.DrilldownBurst = n
	}

	if v := getEnv("LOG_OTEL", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_OTEL format: %w", err)
		}
		config.LogOTel = b
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	if c.CollectionID == "" {
		return fmt.Errorf("COLLECTION_ID cannot be empty")
	}

	if c.ViewCacheSize <= 0 {
		return fmt.Errorf("VIEW_CACHE_SIZE must be positive")
	}

	if c.DrilldownRate <= 0 {
		return fmt.Errorf("DRILLDOWN_RATE must be positive")
	}

	if c.DrilldownBurst <= 0 {
		return fmt.Errorf("DRILLDOWN_BURST must be positive")
	}

	return nil
}

// getEnv retrieves an environment variable or returns a fallback value
func getEnv(key, fallback string) string {
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
