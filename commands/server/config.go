package server

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/safehold/safehold/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// ConfigFile is the name of the node configuration under the home
// directory.
const ConfigFile = "config.toml"

// Config holds the node settings. Command line flags override the values
// read from the file.
type Config struct {
	// Bind is the address the abci server listens on.
	Bind string `toml:"bind"`
	// Debug returns call stacks in error logs.
	Debug bool `toml:"debug"`
	// LogLevel is one of debug, info, error or none.
	LogLevel string `toml:"log_level"`
	// MetricsAddr serves prometheus metrics over http when set.
	MetricsAddr string `toml:"metrics_addr"`
	// DBName is the name of the state database under the home directory.
	DBName string `toml:"db_name"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() Config {
	return Config{
		Bind:     "tcp://localhost:26658",
		LogLevel: "info",
		DBName:   "safehold.db",
	}
}

// LoadConfig reads the configuration from the home directory. Values
// missing from the file keep their defaults.
func LoadConfig(home string) (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(home, ConfigFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(errors.ErrInput, "cannot decode %s: %s", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, path)
	}
	return cfg, nil
}

// WriteConfig stores the configuration in the home directory.
func WriteConfig(home string, cfg Config) error {
	if err := os.MkdirAll(home, 0755); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	f, err := os.OpenFile(filepath.Join(home, ConfigFile), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return f.Close()
}

// Validate checks the settings can be used to start a node.
func (c Config) Validate() error {
	if c.Bind == "" {
		return errors.Wrap(errors.ErrEmpty, "bind")
	}
	if c.DBName == "" {
		return errors.Wrap(errors.ErrEmpty, "db_name")
	}
	if _, err := log.AllowLevel(c.LogLevel); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return nil
}

// Logger wraps the logger with a filter for the configured level.
func (c Config) Logger(logger log.Logger) (log.Logger, error) {
	opt, err := log.AllowLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return log.NewFilter(logger, opt), nil
}
