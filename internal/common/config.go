package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for MarketLens
type Config struct {
	Environment string         `toml:"environment"`
	Provider    ProviderConfig `toml:"provider"`
	Cache       CacheConfig    `toml:"cache"`
	Logging     LoggingConfig  `toml:"logging"`
}

// ProviderConfig holds market-data provider configuration
type ProviderConfig struct {
	BaseURL     string `toml:"base_url"`
	Timeout     string `toml:"timeout"`
	MinInterval string `toml:"min_interval"` // minimum gap between outbound calls per endpoint class
}

// GetTimeout parses and returns the timeout duration
func (c *ProviderConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GetMinInterval parses and returns the minimum call interval
func (c *ProviderConfig) GetMinInterval() time.Duration {
	d, err := time.ParseDuration(c.MinInterval)
	if err != nil {
		return 500 * time.Millisecond
	}
	return d
}

// CacheConfig holds the time-series cache configuration
type CacheConfig struct {
	TTL string `toml:"ttl"`
}

// GetTTL parses and returns the cache entry lifetime
func (c *CacheConfig) GetTTL() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 10 * time.Minute
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Provider: ProviderConfig{
			BaseURL:     "https://query1.finance.yahoo.com",
			Timeout:     "30s",
			MinInterval: "500ms",
		},
		Cache: CacheConfig{
			TTL: "10m",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
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
	if env := os.Getenv("MARKETLENS_ENV"); env != "" {
		config.Environment = env
	}
	if level := os.Getenv("MARKETLENS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if url := os.Getenv("MARKETLENS_PROVIDER_URL"); url != "" {
		config.Provider.BaseURL = url
	}
	if v := os.Getenv("MARKETLENS_PROVIDER_TIMEOUT"); v != "" {
		config.Provider.Timeout = v
	}
	if v := os.Getenv("MARKETLENS_MIN_INTERVAL"); v != "" {
		config.Provider.MinInterval = v
	}
	if v := os.Getenv("MARKETLENS_CACHE_TTL"); v != "" {
		config.Cache.TTL = v
	}
	if v := os.Getenv("MARKETLENS_CACHE_DISABLED"); v != "" {
		if disabled, err := strconv.ParseBool(v); err == nil && disabled {
			config.Cache.TTL = "0s"
		}
	}
}
