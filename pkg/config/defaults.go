package config

// Environment variable names.
const (
	EnvIgnoreCase = "IGNORE_CASE"
	EnvLogLevel   = "MINIGREP_LOG_LEVEL"
	EnvLogFormat  = "MINIGREP_LOG_FORMAT"
)

// Default values for optional settings.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Accepted values for log_level and log_format.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json"}
)

// DefaultDefaults returns the settings used when no defaults file is given.
func DefaultDefaults() *Defaults {
	return &Defaults{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// ApplyEnvironment overrides logging settings from the environment.
// Empty values are ignored.
func (d *Defaults) ApplyEnvironment(lookupEnv LookupEnvFunc) {
	if lookupEnv == nil {
		return
	}
	if level, ok := lookupEnv(EnvLogLevel); ok && level != "" {
		d.LogLevel = level
	}
	if format, ok := lookupEnv(EnvLogFormat); ok && format != "" {
		d.LogFormat = format
	}
}
