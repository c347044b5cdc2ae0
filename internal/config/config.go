package config

import (
	"os"
	"path/filepath"

	"codeberg.org/mutker/errcode/errcode/ec"
	"codeberg.org/mutker/errcode/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName       = "errcode"
	configEnv        = "ERRCODE_CONFIG"
	defaultEnvPrefix = "ERRCODE"

	DefaultLogLevel     = string(LogLevelWarning)
	DefaultBatchSize    = 1
	DefaultBatchTimeout = 5
)

// Backends lists the accepted backend names.
var Backends = []string{"sys", "rpc"}

type Config struct {
	Backend      string `mapstructure:"backend"`
	LogLevel     string `mapstructure:"log_level"`
	Debug        bool   `mapstructure:"debug"`
	Verbose      bool   `mapstructure:"verbose"`
	Journal      bool   `mapstructure:"journal"`
	JournalDB    string `mapstructure:"journal_db"`
	BatchSize    int    `mapstructure:"batch_size"`
	BatchTimeout int    `mapstructure:"batch_timeout"`
}

// DefaultJournalDB returns the journal path used when none is configured.
func DefaultJournalDB() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "errcode", "journal.db")
}

// RegisterFlags adds the flags Load understands to fs. Flag names match the
// configuration keys, with dashes for underscores.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to the configuration file")
	fs.Bool("debug", false, "Enable debugging mode")
	fs.Bool("verbose", false, "Enable verbose logging")
	fs.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	fs.String("backend", ec.Backend, "Error code backend (sys, rpc)")
	fs.String("journal-db", DefaultJournalDB(), "Path to the journal database")
}

// Load reads the configuration from defaults, the config file, the
// environment and flags, in increasing order of precedence. flags may be nil.
// The config file is the one named by ERRCODE_CONFIG unless WithConfigFile
// overrides it.
func Load(flags *pflag.FlagSet, opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := options{
		configPath: os.Getenv(configEnv),
		envPrefix:  defaultEnvPrefix,
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
	}

	v := viper.New()
	v.SetDefault("backend", ec.Backend)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)
	v.SetDefault("journal", true)
	v.SetDefault("journal_db", DefaultJournalDB())
	v.SetDefault("batch_size", DefaultBatchSize)
	v.SetDefault("batch_timeout", DefaultBatchTimeout)

	v.SetEnvPrefix(o.envPrefix)
	v.AutomaticEnv()

	if err := readConfigFile(v, o.configPath); err != nil {
		return nil, err
	}

	if flags != nil {
		for key, name := range map[string]string{
			"backend":    "backend",
			"log_level":  "log-level",
			"debug":      "debug",
			"verbose":    "verbose",
			"journal_db": "journal-db",
		} {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errFactory.Wrap(errors.ErrBindFlags, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	errFactory := errors.New()

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errFactory.Wrap(errors.ErrReadConfig, err).WithMessage("Failed to read config file")
		}
		return nil
	}

	v.SetConfigName(configName)
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "errcode"))
	}
	v.AddConfigPath("/etc/errcode")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errFactory.Wrap(errors.ErrReadConfig, err).WithMessage("Failed to read config file")
		}
	}
	return nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if !validBackend(c.Backend) {
		return errFactory.WithData(errors.ErrInvalidBackend, c.Backend)
	}
	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}
	if c.Journal && c.JournalDB == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "journal_db is required when the journal is enabled")
	}
	if c.BatchSize < 1 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "batch_size must be at least 1")
	}
	if c.BatchTimeout < 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "batch_timeout must not be negative")
	}
	return nil
}

func validBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}

func (c *Config) GetBackend() string { return c.Backend }
func (c *Config) GetLogLevel() string { return c.LogLevel }
func (c *Config) IsDebug() bool { return c.Debug }
func (c *Config) IsVerbose() bool { return c.Verbose }
func (c *Config) IsJournalEnabled() bool { return c.Journal }
func (c *Config) GetJournalDBPath() string { return c.JournalDB }
func (c *Config) GetBatchSize() int { return c.BatchSize }
func (c *Config) GetBatchTimeout() int { return c.BatchTimeout }
