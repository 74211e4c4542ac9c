// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads and persists the volt CLI configuration.
//
// Configuration lives in a single JSONC file (JSON with // comments,
// /* block comments */, and trailing commas), located at:
//   - the path in the VOLT_CONFIG environment variable, or
//   - $XDG_CONFIG_HOME/volt/config.jsonc (~/.config/volt/config.jsonc)
//
// There is no fallback chain beyond that and no automatic discovery:
// one file, resolved deterministically.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "VOLT_CONFIG"

// DefaultAPIURL is the marketplace API endpoint used when the config
// file does not set one.
const DefaultAPIURL = "https://api.voltmarket.dev"

// Config holds the volt CLI settings. The file also stores the API
// token written by "volt login", which is why Save writes mode 0600.
type Config struct {
	// APIURL is the marketplace API base URL.
	APIURL string `json:"api_url,omitempty"`

	// Token is the bearer token for API authentication.
	Token string `json:"token,omitempty"`

	// KeysDir overrides the keypair directory (default
	// ~/.config/volt/keys).
	KeysDir string `json:"keys_dir,omitempty"`
}

// Path returns the config file location: $VOLT_CONFIG when set,
// otherwise the canonical per-user path.
func Path() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(configDir, "volt", "config.jsonc"), nil
}

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals the result.
func Parse(data []byte) (*Config, error) {
	stripped := jsonc.ToJSON(data)

	var config Config
	if err := json.Unmarshal(stripped, &config); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &config, nil
}

// Load reads the config file at path. A missing file is not an error:
// it loads as a zero config with the default API URL, so the CLI works
// before "volt login" has ever run.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{APIURL: DefaultAPIURL}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if config.APIURL == "" {
		config.APIURL = DefaultAPIURL
	}
	return config, nil
}

// Save writes the config to path as plain JSON (a strict subset of
// JSONC), creating the parent directory if needed. Mode 0600: the file
// holds the API token.
func Save(path string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
