// Package config loads run settings from a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a run
type Config struct {
	Input     string `toml:"input" yaml:"input"`
	Top       int    `toml:"top" yaml:"top"`
	Format    string `toml:"format" yaml:"format"`
	Color     string `toml:"color" yaml:"color"`
	Strict    bool   `toml:"strict" yaml:"strict"`
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	LogFile   string `toml:"log_file" yaml:"log_file"`
}

var ErrInvalid = errors.New("invalid config")

// Default returns the settings used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a config file, choosing the decoder by extension
// (.toml, .yaml or .yml). Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for missing settings
func (c *Config) applyDefaults() {
	if c.Input == "" {
		c.Input = "-"
	}
	if c.Top == 0 {
		c.Top = 3
	}
	if c.Format == "" {
		c.Format = "text"
	}
	if c.Color == "" {
		c.Color = "auto"
	}
}

func (c *Config) Validate() error {
	if c.Top <= 0 {
		return fmt.Errorf("%w: top must be positive, got %d", ErrInvalid, c.Top)
	}
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalid, c.Format)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: unknown color mode %q", ErrInvalid, c.Color)
	}
	return nil
}
