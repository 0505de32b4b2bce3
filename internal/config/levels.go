package config

// LogLevel is the minimum severity written by the logger
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// ParseLogLevel converts a string to LogLevel, defaulting to LogLevelInfo
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// LogFormat is the logger encoding
type LogFormat string

const (
	LogFormatConsole LogFormat = "console" // Human readable, for terminals
	LogFormatJSON    LogFormat = "json"    // One object per line, for collectors
)

// ParseLogFormat converts a string to LogFormat, defaulting to LogFormatConsole
func ParseLogFormat(s string) LogFormat {
	switch s {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatConsole
	}
}
