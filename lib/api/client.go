// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the HTTP client for the volt marketplace REST API.
// It is deliberately thin: JSON in, JSON out, no retries, no caching.
// Error responses become typed *Error values callers can match with
// errors.As.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/voltmarket/volt/lib/netutil"
	"github.com/voltmarket/volt/lib/secret"
)

// ClientConfig holds the parameters for creating a Client.
type ClientConfig struct {
	// BaseURL is the marketplace API endpoint, e.g.
	// "https://api.voltmarket.dev".
	BaseURL string

	// Token is the bearer token for authenticated endpoints. May be
	// nil for a client that only calls unauthenticated endpoints. The
	// client borrows the buffer and does not close it.
	Token *secret.Buffer

	// HTTPClient is the HTTP client to use. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Logger receives request-level debug logging. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Client talks to the marketplace API. Safe for concurrent use.
type Client struct {
	baseURL    string
	token      *secret.Buffer
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a marketplace API client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid BaseURL %q: %w", config.BaseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		token:      config.Token,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// doRequest performs one API round trip. A non-2xx response with a
// parsable error body returns a *Error; anything else returns a plain
// wrapped error.
func (c *Client) doRequest(ctx context.Context, method, path string, requestBody any, query url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("api: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		request.Header.Set("Authorization", "Bearer "+c.token.String())
	}

	c.logger.Debug("api request", "method", method, "path", path)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("api: reading %s %s response: %w", method, path, err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	var apiErr Error
	if jsonErr := json.Unmarshal(responseBody, &apiErr); jsonErr != nil || apiErr.Code == "" {
		return nil, fmt.Errorf("api: unexpected %d response from %s %s: %s",
			response.StatusCode, method, path, string(responseBody))
	}
	apiErr.StatusCode = response.StatusCode
	return nil, &apiErr
}

// get performs a GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.doRequest(ctx, http.MethodGet, path, nil, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("api: decoding %s response: %w", path, err)
	}
	return nil
}

// post performs a POST and, when out is non-nil, decodes the JSON
// response into it.
func (c *Client) post(ctx context.Context, path string, requestBody, out any) error {
	body, err := c.doRequest(ctx, http.MethodPost, path, requestBody, nil)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("api: decoding %s response: %w", path, err)
	}
	return nil
}
