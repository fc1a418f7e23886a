// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

// Package config holds the application configuration and its YAML
// persistence helpers.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnsureFullPath creates the parent directories of path.
func EnsureFullPath(path string, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), perm); err != nil {
		return fmt.Errorf("create path for %q: %w", path, err)
	}
	return nil
}

// SaveYAML writes data to path as YAML, creating directories as needed.
func SaveYAML(path string, data any) error {
	if err := EnsureFullPath(path, 0o700); err != nil {
		return err
	}
	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}

// LoadYAML reads path into data.
func LoadYAML(path string, data any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, data); err != nil {
		return fmt.Errorf("unmarshal %q: %w", path, err)
	}
	return nil
}
