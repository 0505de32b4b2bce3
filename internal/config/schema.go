package config

// Config is the root configuration structure
type Config struct {
	Version    int              `yaml:"version"`
	Log        LogConfig        `yaml:"log"`
	Output     OutputConfig     `yaml:"output"`
	Validation ValidationConfig `yaml:"validation"`
}

// LogConfig selects the logger level and encoding
type LogConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// OutputConfig selects the export format and destination
type OutputConfig struct {
	Format string `yaml:"format"`         // json, yaml or puml
	Path   string `yaml:"path,omitempty"` // empty = stdout
}

// ValidationConfig tunes how findings affect a run
type ValidationConfig struct {
	// Strict makes warnings fail the run
	Strict bool `yaml:"strict"`
	// AllowDuplicateIDs accepts data entries sharing an entry ID
	AllowDuplicateIDs bool `yaml:"allow_duplicate_ids"`
}
