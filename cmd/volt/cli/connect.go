// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/voltmarket/volt/lib/api"
	"github.com/voltmarket/volt/lib/config"
	"github.com/voltmarket/volt/lib/keys"
	"github.com/voltmarket/volt/lib/secret"
)

// Connection bundles the API client with the loaded config and the
// resources behind it. Close releases the token buffer.
type Connection struct {
	Client *api.Client
	Config *config.Config

	token *secret.Buffer
}

// Close releases the bearer token memory. Idempotent.
func (c *Connection) Close() error {
	if c.token != nil {
		return c.token.Close()
	}
	return nil
}

// KeysDir resolves the keypair directory: the config override when
// set, otherwise the canonical per-user path.
func (c *Connection) KeysDir() (string, error) {
	if c.Config.KeysDir != "" {
		return c.Config.KeysDir, nil
	}
	return keys.DefaultDir()
}

// ConnectAPI loads the CLI config and builds an authenticated
// marketplace API client from it. Returns a Forbidden error when no
// token has been stored yet ("volt login").
//
// The caller must call Close on the returned Connection.
func ConnectAPI(logger *slog.Logger) (*Connection, error) {
	configPath, err := config.Path()
	if err != nil {
		return nil, Internal("resolving config path: %w", err)
	}
	loaded, err := config.Load(configPath)
	if err != nil {
		return nil, Internal("loading config: %w", err)
	}
	if loaded.Token == "" {
		return nil, Forbidden("not logged in — run \"volt login\" first")
	}

	token, err := secret.NewFromBytes([]byte(loaded.Token))
	if err != nil {
		return nil, Internal("protecting token: %w", err)
	}
	// The heap copy inside Config is of no further use.
	loaded.Token = ""

	client, err := api.NewClient(api.ClientConfig{
		BaseURL:    loaded.APIURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
		Logger:     logger,
	})
	if err != nil {
		token.Close()
		return nil, Internal("creating API client: %w", err)
	}

	return &Connection{Client: client, Config: loaded, token: token}, nil
}

// WrapAPIError translates a typed marketplace API error into a
// categorized command error. Non-API errors come back as transient:
// at this layer they are connection-level failures.
func WrapAPIError(err error) error {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return Transient("marketplace API unreachable: %w", err)
	}
	switch apiErr.Code {
	case api.ErrCodeUnauthorized, api.ErrCodeForbidden:
		return Forbidden("%w", err)
	case api.ErrCodeNotFound:
		return NotFound("%w", err)
	case api.ErrCodeInvalidRequest, api.ErrCodeInsufficientFunds:
		return Validation("%w", err)
	case api.ErrCodeRateLimited:
		return Transient("%w", err)
	}
	return Internal("%w", err)
}
