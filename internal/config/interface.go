package config

// Provider defines the interface for accessing configuration values.
// All configuration values are immutable after loading.
type Provider interface {
	// GetBackend returns the error code backend commands operate on, "sys"
	// or "rpc"
	GetBackend() string

	// GetLogLevel returns the configured logging level
	GetLogLevel() string

	IsDebug() bool
	IsVerbose() bool

	// IsJournalEnabled returns whether recorded codes are persisted
	IsJournalEnabled() bool

	// GetJournalDBPath returns the path to the journal database
	GetJournalDBPath() string

	// GetBatchSize returns how many records the journal buffers before
	// writing them out
	GetBatchSize() int

	// GetBatchTimeout returns the journal flush interval in seconds
	GetBatchTimeout() int
}

// Option defines a configuration option that can be passed to Load
type Option func(*options) error

// options holds internal configuration options
type options struct {
	configPath string
	envPrefix  string
}

// WithConfigFile specifies an explicit configuration file path
func WithConfigFile(path string) Option {
	return func(o *options) error {
		o.configPath = path
		return nil
	}
}

// WithEnvPrefix specifies a custom environment variable prefix
// Default is "ERRCODE"
func WithEnvPrefix(prefix string) Option {
	return func(o *options) error {
		o.envPrefix = prefix
		return nil
	}
}

// LogLevel represents valid logging levels
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// IsValid returns whether the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return true
	default:
		return false
	}
}

// String implements the Stringer interface
func (l LogLevel) String() string {
	return string(l)
}
