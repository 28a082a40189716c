package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/porkengine/gutenberg/internal/log"
)

// WriteDefaultConfig writes the default configuration as YAML to path,
// creating parent directories as needed. Existing files are not
// overwritten.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	defaults := Defaults()
	data := map[string]any{
		"debug": defaults.Debug,
		"ui": map[string]any{
			"show_status_bar": defaults.UI.ShowStatusBar,
			"highlight":       defaults.UI.Highlight,
			"subtle":          defaults.UI.Subtle,
		},
		"media": map[string]any{
			"dir":               defaults.Media.Dir,
			"base_url":          defaults.Media.BaseURL,
			"cache_ttl_minutes": defaults.Media.CacheTTLMinutes,
		},
	}

	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	log.Info(log.CatConfig, "wrote default config", "path", path)
	return nil
}
