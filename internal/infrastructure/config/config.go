// Package config provides configuration management for favbuddy with Viper integration.
package config

import (
	"fmt"
	"time"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for favbuddy.
type Config struct {
	// Language selects the transcript language (en, zh-CN). Empty detects it from LANG/LC_ALL.
	Language string         `mapstructure:"language" toml:"language" json:"language"`
	Favicon  FaviconConfig  `mapstructure:"favicon" toml:"favicon" json:"favicon"`
	Cache    CacheConfig    `mapstructure:"cache" toml:"cache" json:"cache"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
}

// IconService is an icon provider reachable through a URL template.
type IconService struct {
	Name string `mapstructure:"name" toml:"name" json:"name"`
	// URLTemplate must contain the {domain} placeholder.
	URLTemplate string `mapstructure:"url_template" toml:"url_template" json:"url_template"`
	// IsDefault marks the built-in fallback service, which cannot be removed.
	IsDefault bool `mapstructure:"is_default" toml:"is_default" json:"is_default"`
}

// FaviconConfig controls icon acquisition.
type FaviconConfig struct {
	Services []IconService `mapstructure:"services" toml:"services" json:"services"`
	// CurrentService is the index into Services used for fetching.
	CurrentService int `mapstructure:"current_service" toml:"current_service" json:"current_service" jsonschema:"minimum=0"`
	// FetchTimeout is a Go duration. "0s" waits for the transport's own limits.
	FetchTimeout string `mapstructure:"fetch_timeout" toml:"fetch_timeout" json:"fetch_timeout"`
	UserAgent    string `mapstructure:"user_agent" toml:"user_agent" json:"user_agent"`
}

// CacheConfig controls the persistent icon cache.
type CacheConfig struct {
	// Path defaults to $XDG_DATA_HOME/favbuddy/favicon_cache.json when empty.
	Path string `mapstructure:"path" toml:"path" json:"path"`
	// CheckpointInterval is the number of processed links between cache flushes.
	CheckpointInterval int `mapstructure:"checkpoint_interval" toml:"checkpoint_interval" json:"checkpoint_interval" jsonschema:"minimum=1"`
}

// DatabaseConfig holds the run history database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// ActiveService returns the service selected by CurrentService.
func (c *Config) ActiveService() (IconService, error) {
	if c.Favicon.CurrentService < 0 || c.Favicon.CurrentService >= len(c.Favicon.Services) {
		return IconService{}, fmt.Errorf("favicon.current_service %d out of range (have %d services)",
			c.Favicon.CurrentService, len(c.Favicon.Services))
	}
	return c.Favicon.Services[c.Favicon.CurrentService], nil
}

// FetchTimeoutDuration parses Favicon.FetchTimeout. Empty means no timeout.
func (c *Config) FetchTimeoutDuration() (time.Duration, error) {
	if c.Favicon.FetchTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Favicon.FetchTimeout)
	if err != nil {
		return 0, fmt.Errorf("favicon.fetch_timeout: %w", err)
	}
	return d, nil
}
