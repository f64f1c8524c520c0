// Package config defines the configuration file for the chunkopt command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kalafut/chunkopt"
)

// Modes accepted by Config.Mode.
const (
	ModeLines = "lines"
	ModeWords = "words"
)

// Color settings accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// configFileNames is the ordered list of config file names to search for.
var configFileNames = []string{
	"chunkopt.yml",
	"chunkopt.yaml",
	".chunkopt.yml",
	".chunkopt.yaml",
}

// Config is the top-level configuration.
type Config struct {
	Mode                     string        `yaml:"mode"`
	UnimportantLineCharCount int           `yaml:"unimportant_line_char_count"`
	Timeout                  time.Duration `yaml:"timeout"`
	SideBySide               bool          `yaml:"side_by_side"`
	Width                    int           `yaml:"width"`
	Color                    string        `yaml:"color"`
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Mode:                     ModeLines,
		UnimportantLineCharCount: chunkopt.DefaultUnimportantLineCharCount,
		Timeout:                  chunkopt.DefaultTimeout,
		Width:                    120,
		Color:                    ColorAuto,
	}
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeLines, ModeWords:
	default:
		return fmt.Errorf("invalid mode %q", c.Mode)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q", c.Color)
	}
	if c.UnimportantLineCharCount < 0 {
		return fmt.Errorf("unimportant_line_char_count must not be negative, got %d", c.UnimportantLineCharCount)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.Width < 20 {
		return fmt.Errorf("width must be at least 20, got %d", c.Width)
	}
	return nil
}

// Discover returns the path of the first config file found in dir, or an
// empty string if there is none.
func Discover(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads a config file. If configPath is empty, the working directory is
// searched with Discover, and DefaultConfig is returned when nothing is
// found. Fields missing from the file keep their defaults.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		configPath = Discover(wd)
	}

	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}

	return cfg, nil
}

// Options converts the settings that affect diffing into library options.
func (c *Config) Options() []chunkopt.FuncOption {
	return []chunkopt.FuncOption{
		chunkopt.WithThreshold(c.UnimportantLineCharCount),
		chunkopt.WithTimeout(c.Timeout),
	}
}
