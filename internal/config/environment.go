package config

import (
	"os"
	"strconv"
)

// Environment variables that override file settings
const (
	EnvLogLevel     = "AAC_LOG_LEVEL"
	EnvLogFormat    = "AAC_LOG_FORMAT"
	EnvOutputFormat = "AAC_OUTPUT_FORMAT"
	EnvStrict       = "AAC_STRICT"
)

// ApplyEnv overrides config values with any AAC_* variables that are set.
// An unparsable AAC_STRICT is ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = ParseLogLevel(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = ParseLogFormat(v)
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv(EnvStrict); v != "" {
		if strict, err := strconv.ParseBool(v); err == nil {
			c.Validation.Strict = strict
		}
	}
}
