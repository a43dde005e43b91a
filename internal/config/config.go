// Package config loads the optional YAML configuration for sharpeguess.
// The game is fully playable with no config file at all; the file only
// controls logging and round-history recording.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Logging Logging `yaml:"logging"`
	History History `yaml:"history"`
}

// Logging configures the application logger. The TUI owns stdout, so logs go
// to a file; an empty path discards them.
type Logging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// History configures persistence of answered guess rounds.
type History struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used when no file is present: info-level
// logging to nowhere and no round history.
func Default() *Config {
	return &Config{
		Logging: Logging{Level: "info"},
	}
}

// DefaultPath returns the well-known config file location under the user
// config directory, or "" if that directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sharpeguess", "config.yaml")
}

// Load reads the YAML configuration file at the given path. A missing file
// (or empty path) is not an error; it yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	return cfg, nil
}
