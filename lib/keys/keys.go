// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

// Package keys persists the account's NaCl box keypair on disk. The
// marketplace encrypts cluster credentials to the public key; the
// private key never leaves the machine.
//
// Layout under the key directory (default ~/.config/volt/keys):
//
//	key      — base64 private key, mode 0600
//	key.pub  — base64 public key, mode 0644
//
// The private key is loaded straight into a secret.Buffer and never
// held in Go heap memory longer than the read itself.
package keys

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/voltmarket/volt/lib/boxcrypt"
	"github.com/voltmarket/volt/lib/secret"
)

const (
	privateKeyFile = "key"
	publicKeyFile  = "key.pub"
)

// DefaultDir returns the canonical key directory,
// $XDG_CONFIG_HOME/volt/keys (~/.config/volt/keys on most systems).
func DefaultDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(configDir, "volt", "keys"), nil
}

// Exists reports whether a keypair is already present in dir.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, privateKeyFile))
	return err == nil
}

// Generate creates a fresh keypair and writes it into dir, creating
// the directory if needed. It refuses to overwrite an existing key:
// losing the private key makes every credential encrypted to it
// unrecoverable, so replacement must be an explicit manual step.
//
// The caller must call Close on the returned Keypair.
func Generate(dir string) (*boxcrypt.Keypair, error) {
	if Exists(dir) {
		return nil, fmt.Errorf("keypair already exists in %s (remove it manually to regenerate)", dir)
	}

	keypair, err := boxcrypt.GenerateKeypair()
	if err != nil {
		return nil, err
	}

	if err := writeKeypair(dir, keypair); err != nil {
		keypair.Close()
		return nil, err
	}
	return keypair, nil
}

func writeKeypair(dir string, keypair *boxcrypt.Keypair) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating key directory %s: %w", dir, err)
	}

	privatePath := filepath.Join(dir, privateKeyFile)
	file, err := os.OpenFile(privatePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("creating private key file %s: %w", privatePath, err)
	}
	if _, err := file.Write(keypair.PrivateKey.Bytes()); err != nil {
		file.Close()
		return fmt.Errorf("writing private key: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing private key file: %w", err)
	}

	publicPath := filepath.Join(dir, publicKeyFile)
	if err := os.WriteFile(publicPath, []byte(keypair.PublicKey+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing public key file %s: %w", publicPath, err)
	}
	return nil
}

// LoadPrivate reads the private key from dir into a secret.Buffer.
// The caller must call Close on the returned buffer.
func LoadPrivate(dir string) (*secret.Buffer, error) {
	path := filepath.Join(dir, privateKeyFile)
	buffer, err := secret.ReadFromPath(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no private key at %s (run \"volt keys generate\" first)", path)
		}
		return nil, err
	}
	return buffer, nil
}

// LoadPublic reads the base64 public key from dir.
func LoadPublic(dir string) (string, error) {
	path := filepath.Join(dir, publicKeyFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no public key at %s (run \"volt keys generate\" first)", path)
		}
		return "", fmt.Errorf("reading public key %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Fingerprint returns a short BLAKE3 digest of a base64 public key,
// formatted for display: eight hex byte pairs separated by colons.
// Used to compare the local key against what the marketplace has on
// file without pasting full keys around.
func Fingerprint(publicKey string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(publicKey)
	if err != nil {
		return "", fmt.Errorf("decoding base64 public key: %w", err)
	}
	if len(raw) != 32 {
		return "", fmt.Errorf("public key is %d bytes, want 32", len(raw))
	}

	digest := blake3.Sum256(raw)

	parts := make([]string, 8)
	for i := range parts {
		parts[i] = fmt.Sprintf("%02x", digest[i])
	}
	return strings.Join(parts, ":"), nil
}
