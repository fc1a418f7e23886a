// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

package config

import (
	"os"
	"path/filepath"
)

// Styles configures chrome colors by tcell color name.
type Styles struct {
	Border string `yaml:"border"`
	Header string `yaml:"header"`
}

// Config is the root application configuration.
type Config struct {
	DefaultView string `yaml:"defaultView"`
	RefreshRate int    `yaml:"refreshRate"`
	Styles      Styles `yaml:"styles"`
}

// NewConfig returns a config with defaults applied.
func NewConfig() *Config {
	return &Config{
		RefreshRate: 5,
		Styles: Styles{
			Border: "white",
			Header: "yellow",
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tgrid", "config.yaml")
}

// Load reads the config from path. A missing file keeps the current
// values; anything else is an error.
func (c *Config) Load(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := LoadYAML(path, c); err != nil {
		return err
	}
	c.Validate()
	return nil
}

// Save writes the config to path.
func (c *Config) Save(path string) error {
	return SaveYAML(path, c)
}

// Validate clamps out-of-range values back to their defaults.
func (c *Config) Validate() {
	if c.RefreshRate < 1 {
		c.RefreshRate = 5
	}
	if c.Styles.Border == "" {
		c.Styles.Border = "white"
	}
	if c.Styles.Header == "" {
		c.Styles.Header = "yellow"
	}
}
