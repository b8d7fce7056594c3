// ============================================================================
// numx - Numeric Extensions
// ============================================================================
//
// Package:     config
// Description: TOML configuration for the numx CLI
// Author:      Mike Stoffels
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	mdwerror "github.com/msto63/numx/foundation/core/error"
	mdwerrors "github.com/msto63/numx/foundation/core/errors"
	mdwlog "github.com/msto63/numx/foundation/core/log"
)

// EnvConfigPath names the config file when no path is given explicitly
const EnvConfigPath = "NUMX_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Check   CheckConfig   `toml:"check"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// CheckConfig holds settings for running case files
type CheckConfig struct {
	Files  []string `toml:"files"`
	Report string   `toml:"report"`
	Color  *bool    `toml:"color"`
}

// ColorEnabled reports whether text reports are styled
func (c CheckConfig) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, defaults and validates the config file at path
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	for i, f := range cfg.Check.Files {
		cfg.Check.Files[i] = os.ExpandEnv(f)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads path, falling back to $NUMX_CONFIG and then to Default()
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Check.Report == "" {
		c.Check.Report = "text"
	}
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err)
	}
	switch strings.ToLower(c.Check.Report) {
	case "text", "json":
	default:
		return invalid("check.report", c.Check.Report, fmt.Errorf("want text or json"))
	}
	return nil
}

// Logger builds the logger described by the general section
func (c *Config) Logger() *mdwlog.Logger {
	level, _ := mdwlog.ParseLevel(c.General.LogLevel)
	format, _ := mdwlog.ParseFormat(c.General.LogFormat)
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "numx",
	})
}

func invalid(key, value string, cause error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
		Operation("validate").
		Messagef("invalid value %q for %s", value, key).
		Cause(cause).
		Detail("key", key).
		Severity(mdwerror.SeverityHigh).
		Build()
}
