// Package config provides configuration types and defaults for gutenberg.
package config

import (
	"fmt"
	"time"
)

// UIConfig holds playground interface options.
type UIConfig struct {
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	Highlight     string `mapstructure:"highlight"` // hex color for the focused block
	Subtle        string `mapstructure:"subtle"`    // hex color for chrome text
}

// MediaConfig holds media library options.
type MediaConfig struct {
	// Dir is where the media database lives.
	Dir string `mapstructure:"dir"`
	// BaseURL prefixes registered upload URLs.
	BaseURL string `mapstructure:"base_url"`
	// CacheTTLMinutes bounds how long media metadata stays cached.
	CacheTTLMinutes int `mapstructure:"cache_ttl_minutes"`
}

// CacheTTL returns the metadata cache TTL as a duration.
func (m MediaConfig) CacheTTL() time.Duration {
	return time.Duration(m.CacheTTLMinutes) * time.Minute
}

// Config holds all configuration options for gutenberg.
type Config struct {
	Debug bool        `mapstructure:"debug"`
	UI    UIConfig    `mapstructure:"ui"`
	Media MediaConfig `mapstructure:"media"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			ShowStatusBar: true,
			Highlight:     "#7D56F4",
			Subtle:        "#6B6B6B",
		},
		Media: MediaConfig{
			Dir:             ".gutenberg",
			BaseURL:         "/media",
			CacheTTLMinutes: 10,
		},
	}
}

// Validate rejects configurations the editor cannot run with.
func (c Config) Validate() error {
	if c.Media.Dir == "" {
		return fmt.Errorf("media.dir must not be empty")
	}
	if c.Media.CacheTTLMinutes < 0 {
		return fmt.Errorf("media.cache_ttl_minutes must not be negative")
	}
	return nil
}
