// Package config loads the rpslcheck configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the root configuration structure.
type Config struct {
	// Strict enables cardinality checks and cleaning of every attribute.
	Strict bool `yaml:"strict"`
	// SchemaFile declares extra classes on top of the built-in ones.
	SchemaFile string `yaml:"schema_file,omitempty"`
	// Workers bounds the number of objects parsed concurrently.
	Workers int `yaml:"workers"`
	// FailOnWarnings makes warnings count as failures for the exit status.
	FailOnWarnings bool `yaml:"fail_on_warnings"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the zerolog logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{Strict: true}
	applyDefaults(cfg)

	return cfg
}

// Load reads a configuration file. Environment variables in the file are
// expanded before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	data = []byte(os.ExpandEnv(string(data)))

	cfg := Config{Strict: true}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadWithFallback loads path when it exists and returns the defaults
// otherwise.
func LoadWithFallback(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config: %w", err)
		}
	}

	return Default(), nil
}

func applyDefaults(cfg *Config) {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = zerolog.LevelInfoValue
	}

	if cfg.Log.Format == "" {
		cfg.Log.Format = FormatConsole
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs []error

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if !slices.Contains([]string{FormatConsole, FormatJSON}, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format: must be %q or %q, got %q", FormatConsole, FormatJSON, c.Log.Format))
	}

	return errors.Join(errs...)
}

// Logger builds the logger described by the configuration, writing to w.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if c.Log.Format == FormatJSON {
		logger = zerolog.New(w)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w})
	}

	return logger.Level(level).With().Timestamp().Logger()
}
