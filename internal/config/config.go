package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cricbid/auctionctl/internal/errors"
)

// Config holds the global auctionctl configuration stored at
// $XDG_CONFIG_HOME/auctionctl/config.yaml.
type Config struct {
	// APIURL is the base URL of the auction platform API
	APIURL string `yaml:"api_url"`

	// TimeoutSeconds is the per-request HTTP timeout
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// PollSeconds is the watch-mode team refresh period
	PollSeconds int `yaml:"poll_seconds"`

	// LogLevel is the minimum log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		APIURL:         "http://localhost:8000",
		TimeoutSeconds: 30,
		PollSeconds:    3,
		LogLevel:       "warn",
	}
}

// Dir returns the auctionctl configuration directory
func Dir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "auctionctl")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "auctionctl")
}

// Path returns the configuration file path
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the configuration file, falling back to defaults when it does
// not exist. The AUCTIONCTL_API_URL environment variable overrides the file.
func Load() (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	switch {
	case os.IsNotExist(err):
		// defaults
	case err != nil:
		return cfg, errors.Wrap(errors.ErrCodeConfigRead, "failed to read config file", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeConfigInvalid, "failed to parse config file", err).
				WithSuggestion("check the YAML syntax in " + Path())
		}
	}

	if v := os.Getenv("AUCTIONCTL_API_URL"); v != "" {
		cfg.APIURL = v
	}

	return cfg, nil
}

// Save writes the configuration file, creating the directory if needed
func (c Config) Save() error {
	if err := os.MkdirAll(Dir(), 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeConfigRead, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "failed to marshal config", err)
	}

	return os.WriteFile(Path(), data, 0o600)
}

// Timeout returns the per-request timeout as a duration
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// PollInterval returns the watch-mode refresh period as a duration
func (c Config) PollInterval() time.Duration {
	if c.PollSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.PollSeconds) * time.Second
}
