// Package config provides 12-factor configuration for the layout tooling.
//
// Configuration is loaded from environment variables with sensible defaults:
//   - GRIDFALL_ROOT, PATHS_STRICT
//   - LOG_LEVEL, LOG_DEV
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Paths   PathsConfig
	Logging LogConfig
}

// PathsConfig holds project layout configuration.
type PathsConfig struct {
	// Root overrides root discovery; empty means walk up from the
	// working directory looking for a root marker.
	Root string `envconfig:"GRIDFALL_ROOT" default:""`
	// Strict makes scaffolding fail on missing directories instead of
	// creating them.
	Strict bool `envconfig:"PATHS_STRICT" default:"false"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Root:   "",
			Strict: false,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
