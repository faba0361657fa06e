// Package config loads the sequin CLI configuration.
//
// Sources are applied in order, later ones winning:
//
//  1. built-in defaults
//  2. an optional YAML file
//  3. environment variables prefixed with SEQUIN_
//
// Environment variables map onto keys by dropping the prefix, lowercasing, and turning the
// first underscore into a dot:
//
//	SEQUIN_LOG_LEVEL     -> log.level
//	SEQUIN_WINDOW_LENGTH -> window.length
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "SEQUIN_"

var ErrInvalidConfig = errors.New("invalid config")

// Config is the CLI configuration.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Window WindowConfig `koanf:"window"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// WindowConfig holds defaults for the windowing commands.
type WindowConfig struct {
	Length int    `koanf:"length"`
	Fill   string `koanf:"fill"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Window: WindowConfig{
			Length: 2,
			Fill:   "",
		},
	}
}

// Validate checks the configuration for values the CLI cannot work with.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.format must be json or console, got %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Window.Length <= 0 {
		return fmt.Errorf("%w: window.length must be positive, got %d", ErrInvalidConfig, c.Window.Length)
	}
	return nil
}

// Load builds the configuration from defaults, the YAML file at path (skipped when path is
// empty) and the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps SEQUIN_WINDOW_LENGTH to window.length.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
