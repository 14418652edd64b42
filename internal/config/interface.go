package config

// Provider defines read access to the loaded configuration.
// Values are immutable after Load returns.
type Provider interface {
	// GetRange returns the inclusive bounds for the secret number
	GetRange() (min, max int)

	// GetSeed returns the random seed, 0 meaning "seed from the runtime"
	GetSeed() uint64

	// GetLogLevel returns the configured logging level
	GetLogLevel() string

	// IsHistoryEnabled returns whether results are stored in the history database
	IsHistoryEnabled() bool

	// GetHistoryDBPath returns the path to the history database
	GetHistoryDBPath() string

	// GetMetricsFile returns the textfile path for exported metrics, if any
	GetMetricsFile() string
}

// Option defines a configuration option that can be passed to Load
type Option func(*options) error

// options holds internal configuration options
type options struct {
	configPath string
	envPrefix  string
	gameFlags  bool
}

// WithConfigFile specifies an explicit configuration file path
func WithConfigFile(path string) Option {
	return func(o *options) error {
		o.configPath = path
		return nil
	}
}

// WithEnvPrefix specifies a custom environment variable prefix
// Default is "TERMTOYS"
func WithEnvPrefix(prefix string) Option {
	return func(o *options) error {
		o.envPrefix = prefix
		return nil
	}
}

// WithGameFlags registers the guessing game's flags (--min, --max, --seed, --stats)
func WithGameFlags() Option {
	return func(o *options) error {
		o.gameFlags = true
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
