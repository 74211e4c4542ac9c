// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package kubeconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath returns the canonical kubeconfig location,
// $HOME/.kube/config.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".kube", "config"), nil
}

// Load reads and parses the kubeconfig at path. A missing file is not
// an error: it loads as an empty well-formed document, so first-time
// syncs behave exactly like merges into an empty file. A file that
// exists but cannot be read or parsed is a real error — silently
// overwriting a corrupt kubeconfig would destroy entries the user may
// be able to recover by hand.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("reading kubeconfig %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing kubeconfig %s: %w", path, err)
	}
	return &config, nil
}

// Encode serializes a kubeconfig document in the standard textual
// format (hyphenated keys, two-space indent).
func Encode(config *Config) ([]byte, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("encoding kubeconfig: %w", err)
	}
	return data, nil
}

// Write serializes config to path, creating the parent directory if it
// does not exist. The file is written 0600: it holds bearer tokens.
func Write(path string, config *Config) error {
	data, err := Encode(config)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing kubeconfig %s: %w", path, err)
	}
	return nil
}

// Sync merges candidate into the kubeconfig at path and writes the
// result back: load (an empty document when the file is missing),
// Merge, write. This is the sole mutating entry point. Two concurrent
// invocations race last-writer-wins — acceptable for an interactive
// CLI against a per-user file. Returns the merged document.
func Sync(path string, candidate *Config) (*Config, error) {
	existing, err := Load(path)
	if err != nil {
		return nil, err
	}

	merged := Merge(*existing, candidate)

	if err := Write(path, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}
