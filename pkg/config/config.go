// Package config provides the launcher's persisted settings: where game
// data lives, how parallel acquisition runs, and network behavior. It
// supports YAML configuration files with sensible defaults for every
// field a user leaves out.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/echo-launcher/echolauncher/pkg/errors"
	"github.com/echo-launcher/echolauncher/pkg/fsutil"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// GameDir is the root for assets, libraries and versions.
	GameDir string `yaml:"game_dir,omitempty"`

	// Network settings.
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	Concurrency int           `yaml:"concurrency"`
	UserAgent   string        `yaml:"user_agent,omitempty"`

	// HooksDir holds optional tengo hook scripts (pre-fetch.tengo,
	// post-fetch.tengo).
	HooksDir string `yaml:"hooks_dir,omitempty"`

	// Output settings.
	LogLevel string `yaml:"log_level"` // error, warn, info, debug
}

// Default configuration values.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultLogLevel is the default logging verbosity.
	DefaultLogLevel = "info"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	gameDir, err := fsutil.GetGameDir()
	if err != nil {
		// Fall back to the working directory if the user dir is
		// undeterminable.
		gameDir = "."
	}
	return &Config{
		Settings: Settings{
			GameDir:     gameDir,
			HTTPTimeout: DefaultHTTPTimeout,
			Concurrency: 0, // 0 = derive from CPU count
			LogLevel:    DefaultLogLevel,
		},
	}
}

// DefaultConfigPath returns the conventional config file location.
func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "cannot determine user config directory")
	}
	return filepath.Join(base, fsutil.AppName, "config.yaml"), nil
}

// LoadConfig loads configuration from a YAML file, filling omitted fields
// with defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read config file %s", path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrConfigParse, "%s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the config at path, or returns defaults when
// the file does not exist.
func LoadConfigOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := fsutil.WriteFileAtomic(path, data, fsutil.FileModeDefault); err != nil {
		return errors.Wrapf(err, "failed to write config %s", path)
	}
	return nil
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	if c.Settings.HTTPTimeout < 0 {
		return errors.Wrap(errors.ErrConfigValidation, "http_timeout cannot be negative")
	}
	if c.Settings.Concurrency < 0 {
		return errors.Wrap(errors.ErrConfigValidation, "concurrency cannot be negative")
	}
	if c.Settings.GameDir == "" {
		return errors.Wrap(errors.ErrConfigValidation, "game_dir cannot be empty")
	}
	switch c.Settings.LogLevel {
	case "", "error", "warn", "warning", "info", "debug":
	default:
		return errors.Wrapf(errors.ErrConfigValidation, "invalid log level %q", c.Settings.LogLevel)
	}
	return nil
}
