// SPDX-License-Identifier: MIT

// Package config handles epdcentrality configuration loading.
//
// A YAML file supplies defaults for the CLI; EPDC_* environment variables
// override the file; command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by applyEnvOverrides.
const (
	EnvSource         = "EPDC_SOURCE"
	EnvSimulated      = "EPDC_SIMULATED"
	EnvAllowNonFinite = "EPDC_ALLOW_NON_FINITE"
	EnvLogLevel       = "EPDC_LOG_LEVEL"
	EnvLogFormat      = "EPDC_LOG_FORMAT"
)

// DefaultPath is the config file looked up when no --config flag is given.
const DefaultPath = "epdcentrality.yaml"

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config is the root configuration structure.
type Config struct {
	// Source is the container ingested when no path argument is given.
	Source string `yaml:"source"`
	// Simulated selects the impact parameter as target.
	Simulated bool `yaml:"simulated"`
	// AllowNonFinite keeps NaN/Inf values during ingestion.
	AllowNonFinite bool          `yaml:"allow_non_finite"`
	Logging        LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // json | console
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path on top of the defaults, then applies environment overrides.
// A missing file is not an error: the defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err = cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvSource); v != "" {
		c.Source = v
	}
	if v := os.Getenv(EnvSimulated); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSimulated, v, err)
		}
		c.Simulated = b
	}
	if v := os.Getenv(EnvAllowNonFinite); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvAllowNonFinite, v, err)
		}
		c.AllowNonFinite = b
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}

	return nil
}

// Validate checks the logging settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}

	return nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
