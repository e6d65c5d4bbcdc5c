package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the tracker client
type Config struct {
	Environment string        `toml:"environment"`
	Backend     BackendConfig `toml:"backend"`
	Search      SearchConfig  `toml:"search"`
	Feed        FeedConfig    `toml:"feed"`
	Query       QueryConfig   `toml:"query"`
	Logging     LoggingConfig `toml:"logging"`
}

// BackendConfig holds the tracker backend API configuration
type BackendConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *BackendConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// SearchConfig holds ticker autocomplete configuration
type SearchConfig struct {
	Debounce string `toml:"debounce"` // duration string, default "300ms"
}

// GetDebounce parses and returns the debounce window duration
func (c *SearchConfig) GetDebounce() time.Duration {
	d, err := time.ParseDuration(c.Debounce)
	if err != nil || d <= 0 {
		return 300 * time.Millisecond
	}
	return d
}

// FeedConfig holds daily-feed behaviour configuration.
// AutoLoad restores the earlier load-on-start behaviour; the released
// default is manual refresh only.
type FeedConfig struct {
	AutoLoad bool `toml:"auto_load"`
}

// QueryConfig holds the initial search configuration shown at startup
type QueryConfig struct {
	Ticker string `toml:"ticker"`
	Period string `toml:"period"` // 3m, 6m or 12m
	Filter string `toml:"filter"` // PS_ONLY or ALL
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Backend: BackendConfig{
			BaseURL:   "http://localhost:8080/api/v1",
			RateLimit: 10,
			Timeout:   "30s",
		},
		Search: SearchConfig{
			Debounce: "300ms",
		},
		Feed: FeedConfig{
			AutoLoad: false,
		},
		Query: QueryConfig{
			Ticker: "AAPL",
			Period: "12m",
			Filter: "PS_ONLY",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("TRACKER_ENV"); env != "" {
		config.Environment = env
	}

	if url := os.Getenv("TRACKER_BACKEND_URL"); url != "" {
		config.Backend.BaseURL = url
	}

	if limit := os.Getenv("TRACKER_RATE_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			config.Backend.RateLimit = n
		}
	}

	if d := os.Getenv("TRACKER_DEBOUNCE"); d != "" {
		config.Search.Debounce = d
	}

	if v := os.Getenv("TRACKER_FEED_AUTOLOAD"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Feed.AutoLoad = b
		}
	}

	if level := os.Getenv("TRACKER_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}
