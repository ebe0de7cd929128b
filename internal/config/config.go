// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads analyzer settings from YAML files with optional
// named profiles layered over the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings are the tunable knobs shared by the defaults block and by
// profiles.
type Settings struct {
	Format  string `yaml:"format,omitempty"`
	Output  string `yaml:"output,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
	Debug   bool   `yaml:"debug,omitempty"`
	NoColor bool   `yaml:"no_color,omitempty"`
}

// Config is the on-disk configuration shape.
type Config struct {
	Defaults Settings            `yaml:"defaults"`
	Profiles map[string]Settings `yaml:"profiles,omitempty"`
}

// DefaultConfig returns the built-in configuration used when no file is
// present.
func DefaultConfig() *Config {
	return &Config{
		Defaults: Settings{Format: "text"},
	}
}

// LoadConfig reads and parses one YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Defaults.Format == "" {
		cfg.Defaults.Format = "text"
	}
	return cfg, nil
}

// FindConfigFile returns the first config file found in the standard
// locations, or "" when none exists.
func FindConfigFile() string {
	candidates := []string{
		"fir-scan.yaml",
		".fir-scan.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "fir-scan", "config.yaml"))
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LoadConfigOrDefault loads the given path, or the first discovered
// config file when path is empty, and falls back to the built-in
// defaults when nothing is found. A malformed file is an error; a
// missing one is not.
func LoadConfigOrDefault(path string) (*Config, error) {
	if path == "" {
		path = FindConfigFile()
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// Resolve layers the named profile over the defaults. An empty profile
// name returns the defaults unchanged.
func (c *Config) Resolve(profile string) (Settings, error) {
	settings := c.Defaults
	if profile == "" {
		return settings, nil
	}
	overrides, ok := c.Profiles[profile]
	if !ok {
		return Settings{}, fmt.Errorf("unknown profile %q", profile)
	}
	if overrides.Format != "" {
		settings.Format = overrides.Format
	}
	if overrides.Output != "" {
		settings.Output = overrides.Output
	}
	settings.Verbose = settings.Verbose || overrides.Verbose
	settings.Debug = settings.Debug || overrides.Debug
	settings.NoColor = settings.NoColor || overrides.NoColor
	return settings, nil
}
