package config

import (
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/mutker/termtoys/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultEnvPrefix = "TERMTOYS"
	DefaultLogLevel  = string(LogLevelWarning)
	DefaultMin       = 1
	DefaultMax       = 100

	configName = "termtoys"
	configType = "toml"
	appDirName = "termtoys"
)

type Config struct {
	Min         int    `mapstructure:"min"`
	Max         int    `mapstructure:"max"`
	Seed        uint64 `mapstructure:"seed"`
	Stats       bool   `mapstructure:"stats"`
	LogLevel    string `mapstructure:"log_level"`
	History     bool   `mapstructure:"history"`
	HistoryDB   string `mapstructure:"history_db"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"min":          "min",
	"max":          "max",
	"seed":         "seed",
	"stats":        "stats",
	"log-level":    "log_level",
	"history":      "history",
	"history-db":   "history_db",
	"metrics-file": "metrics_file",
}

// Load reads configuration for the program called name from defaults, the
// TOML config file, the environment and args, in increasing precedence.
func Load(name string, args []string, opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := &options{envPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	fs := newFlagSet(name, o.gameFlags)
	if err := fs.Parse(args); err != nil {
		return nil, errFactory.Wrap(errors.ErrParseFlags, err)
	}

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, o, fs); err != nil {
		return nil, err
	}

	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(key, f)
	})
	if bindErr != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, bindErr)
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("min", DefaultMin)
	v.SetDefault("max", DefaultMax)
	v.SetDefault("seed", 0)
	v.SetDefault("stats", false)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("history", false)
	v.SetDefault("history_db", defaultHistoryDB())
	v.SetDefault("metrics_file", "")
}

func newFlagSet(name string, gameFlags bool) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.String("config", "", "Path to a TOML config file")
	fs.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	fs.Bool("history", false, "Store results in the history database")
	fs.String("history-db", defaultHistoryDB(), "Path to the history database")
	fs.String("metrics-file", "", "Write metrics in Prometheus text format to this file on exit")

	if gameFlags {
		fs.Int("min", DefaultMin, "Smallest possible secret number")
		fs.Int("max", DefaultMax, "Largest possible secret number")
		fs.Uint64("seed", 0, "Random seed, 0 picks one at random")
		fs.Bool("stats", false, "Print history statistics and exit")
	}

	return fs
}

func readConfigFile(v *viper.Viper, o *options, fs *pflag.FlagSet) error {
	errFactory := errors.New()

	path := o.configPath
	if f := fs.Lookup("config"); f != nil && f.Changed {
		path = f.Value.String()
	}
	if path == "" {
		path = os.Getenv(o.envPrefix + "_CONFIG")
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(configType)
		if err := v.ReadInConfig(); err != nil {
			return errFactory.Wrap(errors.ErrReadConfig, err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, appDirName))
	}
	v.AddConfigPath("/etc")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	return nil
}

func defaultHistoryDB() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), appDirName, "history.db")
		}
		dir = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dir, appDirName, "history.db")
}

// Validate checks field values and reports the first problem found.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	if c.Min < 0 || c.Min > c.Max {
		return errFactory.WithData(errors.ErrInvalidRange, struct {
			Min int
			Max int
		}{
			Min: c.Min,
			Max: c.Max,
		})
	}

	if c.History && c.HistoryDB == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "history enabled without a database path")
	}

	return nil
}

var _ Provider = (*Config)(nil)

func (c *Config) GetRange() (int, int)     { return c.Min, c.Max }
func (c *Config) GetSeed() uint64          { return c.Seed }
func (c *Config) GetLogLevel() string      { return c.LogLevel }
func (c *Config) IsHistoryEnabled() bool   { return c.History }
func (c *Config) GetHistoryDBPath() string { return c.HistoryDB }
func (c *Config) GetMetricsFile() string   { return c.MetricsFile }
