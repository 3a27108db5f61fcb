// Package config loads the optional YAML defaults file for my-ls.
// Defaults only fill in options the command line left unset; they can
// never produce an option error or override an explicit flag.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harrison/myls/internal/models"
)

// DefaultPath is the defaults file looked up in the working directory
// when MYLS_CONFIG is not set.
const DefaultPath = ".myls.yaml"

// Format values accepted in the defaults file.
const (
	FormatClassic = "classic"
	FormatJSON    = "json"
)

// Config represents the defaults file contents.
type Config struct {
	// All enables --all by default.
	All bool `yaml:"all"`

	// Long enables --long by default.
	Long bool `yaml:"long"`

	// Format picks the default output format: "classic" or "json".
	// Empty leaves the built-in classic rendering in place.
	Format string `yaml:"format"`

	// LogLevel sets the diagnostic logging verbosity (debug, info,
	// warn, error). MYLS_LOG_LEVEL takes precedence when set.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with zero defaults: no flags enabled,
// classic format, info-level logging.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// Load resolves the defaults file path from MYLS_CONFIG, falling back
// to .myls.yaml in the working directory, and loads it.
func Load() (*Config, error) {
	path := os.Getenv("MYLS_CONFIG")
	if path == "" {
		path = DefaultPath
	}
	return LoadConfig(path)
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	switch cfg.Format {
	case "", FormatClassic, FormatJSON:
	default:
		return nil, fmt.Errorf("invalid format %q in config file (want %q or %q)", cfg.Format, FormatClassic, FormatJSON)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Apply merges the file defaults into options the command line left
// unset. Format applies only when neither --json nor --classic was
// given, so defaults can never trigger the format-conflict error.
func (c *Config) Apply(opts *models.Options) {
	if c.All {
		opts.All = true
	}
	if c.Long {
		opts.Long = true
	}
	if !opts.JSON && !opts.Classic {
		switch c.Format {
		case FormatJSON:
			opts.JSON = true
		case FormatClassic:
			opts.Classic = true
		}
	}
}
