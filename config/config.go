// Package config carries the per-project settings of the AT checker and
// a grammar catalog cache for long-lived sessions.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/kbaskett248/atlex/lexer"
)

// FileName is the per-project settings file, looked up from a source
// file's directory upward.
const FileName = ".atlex.yaml"

// Config holds the checker settings.
type Config struct {
	// Grammar is a path to a grammar description; empty selects the
	// embedded AT grammar.
	Grammar string `mapstructure:"grammar" yaml:"grammar,omitempty"`

	// StartMode is the mode token streams open in.
	StartMode string `mapstructure:"start_mode" yaml:"start_mode"`

	// Resync makes the checker skip to the next line after an error
	// token instead of stopping at the first one.
	Resync bool `mapstructure:"resync" yaml:"resync"`

	// MaxErrors caps the diagnostics reported per file; 0 removes the cap.
	MaxErrors int `mapstructure:"max_errors" yaml:"max_errors"`

	// ShowDropped includes stripped tokens in token dumps.
	ShowDropped bool `mapstructure:"show_dropped" yaml:"show_dropped"`

	// Exclude lists glob patterns of file names the checker skips.
	Exclude []string `mapstructure:"exclude" yaml:"exclude,omitempty"`
}

// Default returns the settings used when no settings file is present.
func Default() *Config {
	return &Config{
		StartMode: lexer.DefaultMode,
		Resync:    true,
		MaxErrors: 20,
	}
}

// Load reads a yaml settings file. Keys the file does not set keep
// their default values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config file %s: %w", path, err)
	}
	return cfg, nil
}

// Search walks up from dir looking for FileName, the way per-project
// linter overrides are resolved. Returns an empty path when no settings
// file is found.
func Search(dir string) (string, error) {
	d, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("error resolving %s: %w", dir, err)
	}

	for {
		path := filepath.Join(d, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return "", nil
		}
		d = parent
	}
}

// Excluded reports whether a file name matches one of the exclude
// patterns.
func (c *Config) Excluded(name string) bool {
	base := filepath.Base(name)
	for _, pattern := range c.Exclude {
		if ok, err := filepath.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// Write stores the settings at path, creating the directory if needed.
func (c *Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating config directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
