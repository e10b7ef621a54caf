// Package config loads the spur project manifest (spur.yml) using Viper and
// resolves it into the runtime plans the dev command consumes.
//
// Configuration sources, highest priority first:
//  1. Command-line flags bound by cmd/root.go
//  2. Environment variables with the SPUR_ prefix (SPUR_CSS_ENABLED, ...)
//  3. The spur.yml manifest in the current directory
//
// The css section describes the optional secondary watcher (a Tailwind
// pipeline run through npx); the dev section can replace the primary watch
// command. Resolution happens once per invocation: the returned values are
// immutable and need no further lookup at launch time.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the typed view of the spur.yml manifest.
type Config struct {
	App AppConfig `yaml:"app" mapstructure:"app"`
	Dev DevConfig `yaml:"dev" mapstructure:"dev"`
	CSS CSSConfig `yaml:"css" mapstructure:"css"`
}

// AppConfig identifies the scaffolded project.
type AppConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
}

// DevConfig holds dev-mode overrides.
type DevConfig struct {
	// Command replaces the built-in watch-and-run loop when set.
	// It is shell-split on whitespace; no shell interpretation happens.
	Command string `yaml:"command" mapstructure:"command"`
}

// CSSConfig describes the optional Tailwind watcher.
type CSSConfig struct {
	Enabled     bool     `yaml:"enabled" mapstructure:"enabled"`
	Input       []string `yaml:"input" mapstructure:"input"`
	Output      string   `yaml:"output" mapstructure:"output"`
	Minify      bool     `yaml:"minify" mapstructure:"minify"`
	Sourcemap   bool     `yaml:"sourcemap" mapstructure:"sourcemap"`
	WatchAlways bool     `yaml:"watch_always" mapstructure:"watch_always"`
}

// Load unmarshals the manifest previously read by viper (see cmd/root.go)
// into a validated Config. A missing manifest yields defaults with the css
// watcher disabled.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Handle css settings set via viper (workaround for viper slice/bool handling)
	if viper.IsSet("css.enabled") {
		config.CSS.Enabled = viper.GetBool("css.enabled")
	}
	if viper.IsSet("css.input") && len(config.CSS.Input) == 0 {
		config.CSS.Input = viper.GetStringSlice("css.input")
	}
	if viper.IsSet("css.watch_always") {
		config.CSS.WatchAlways = viper.GetBool("css.watch_always")
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates manifest values for correctness and path safety
func validateConfig(config *Config) error {
	if config.CSS.Enabled {
		if len(config.CSS.Input) == 0 {
			return fmt.Errorf("css config: enabled but no input files configured")
		}
		if config.CSS.Output == "" {
			return fmt.Errorf("css config: enabled but no output file configured")
		}
	}

	for _, in := range config.CSS.Input {
		if err := validateProjectPath(in); err != nil {
			return fmt.Errorf("css config: input %q: %w", in, err)
		}
	}
	if config.CSS.Output != "" {
		if err := validateProjectPath(config.CSS.Output); err != nil {
			return fmt.Errorf("css config: output %q: %w", config.CSS.Output, err)
		}
	}

	return nil
}

// validateProjectPath rejects paths escaping the project directory.
func validateProjectPath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	if filepath.IsAbs(path) {
		return fmt.Errorf("absolute paths are not allowed")
	}
	clean := filepath.Clean(path)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path escapes the project directory")
	}
	return nil
}

// DevCommand returns the configured primary watch command split into argv
// form, or nil when the built-in watcher should be used.
func (c *Config) DevCommand() []string {
	fields := strings.Fields(c.Dev.Command)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
