// Package config loads service configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all service configuration. It is read once at startup and
// never mutated afterwards.
type Config struct {
	Port int `yaml:"port"`

	// APIKey gates the write endpoints via bearer auth. Empty means the
	// service runs open, for dev use.
	APIKey string `yaml:"api_key,omitempty"`

	Layout LayoutConfig `yaml:"layout"`
	Log    LogConfig    `yaml:"log"`
}

// LayoutConfig tunes the wireframe compiler policy.
type LayoutConfig struct {
	MaxColumns int `yaml:"max_columns"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// Default returns the configuration used when no file or overrides exist.
func Default() *Config {
	return &Config{
		Port: 8080,
		Layout: LayoutConfig{
			MaxColumns: 3,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path, falling back to defaults when the file
// does not exist, then applies environment overrides (PORT, AGENT_API_KEY,
// AGENT_MAX_COLUMNS, AGENT_LOG_LEVEL).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.Layout.MaxColumns < 1 {
		return nil, fmt.Errorf("layout.max_columns must be at least 1, got %d", cfg.Layout.MaxColumns)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		}
	}
	if v := os.Getenv("AGENT_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("AGENT_MAX_COLUMNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Layout.MaxColumns = n
		}
	}
	if v := os.Getenv("AGENT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// AuthEnabled reports whether bearer auth gates the write endpoints.
func (c *Config) AuthEnabled() bool {
	return c.APIKey != ""
}
