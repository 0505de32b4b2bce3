// Package config provides configuration management for the aac tool.
//
// Config file locations (priority order):
//  1. $AAC_CONFIG
//  2. ./aac.yaml
//  3. $XDG_CONFIG_HOME/aac/config.yaml
//  4. ~/.config/aac/config.yaml
//  5. /etc/aac/config.yaml
//
// AAC_* environment variables and command line flags override file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOutputFormat is used when no output format is configured
const DefaultOutputFormat = "json"

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Log: LogConfig{
			Level:  LogLevelInfo,
			Format: LogFormatConsole,
		},
		Output: OutputConfig{Format: DefaultOutputFormat},
	}
}

// applyDefaults fills in missing values with defaults and normalizes
// unknown level and format names
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	c.Log.Level = ParseLogLevel(string(c.Log.Level))
	c.Log.Format = ParseLogFormat(string(c.Log.Format))
	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	output := c.Output.Path
	if output == "" {
		output = "stdout"
	}
	return fmt.Sprintf("Log: %s/%s, Output: %s -> %s, Strict: %t, Duplicate IDs: %t",
		c.Log.Level, c.Log.Format, c.Output.Format, output,
		c.Validation.Strict, c.Validation.AllowDuplicateIDs)
}
