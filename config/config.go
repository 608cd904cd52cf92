// Package config loads optional YAML defaults for the cmd/termdemo
// harness. The core library itself never reads files, per spec.md §6's
// "no persisted state" — this package exists only for the demo binary.
//
// Grounded on dcosson-h2/internal/config/config.go's yaml.v3 loader and
// its graceful "file absent -> zero-value config" handling.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the demo harness's adjustable defaults.
type Config struct {
	Shell           string `yaml:"shell"`
	Rows            int    `yaml:"rows"`
	Cols            int    `yaml:"cols"`
	MaxScrollback   int    `yaml:"max_scrollback"`
	ForegroundTheme [3]int `yaml:"foreground_theme"`
	BackgroundTheme [3]int `yaml:"background_theme"`
}

// Default returns the demo harness's built-in defaults, used when no
// config file is present.
func Default() Config {
	return Config{
		Rows:          24,
		Cols:          80,
		MaxScrollback: 10000,
	}
}

// Load reads a YAML config file at path. A missing file is not an error:
// it returns Default() unchanged, matching dcosson-h2's Load/LoadFrom
// behavior for an absent config.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
