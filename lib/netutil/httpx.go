// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP I/O helpers for the marketplace API
// client. All response body reads are bounded at MaxResponseSize to
// prevent unbounded memory allocation from a misbehaving server. These
// helpers are for JSON API responses, not for streaming downloads,
// which should be read incrementally with io.Copy.
package netutil

import (
	"io"
)

// MaxResponseSize is the bound on JSON API response body reads: 64 MB.
// Legitimate marketplace responses are orders of magnitude smaller; the
// limit is generous so it never interferes with normal operation.
const MaxResponseSize int64 = 64 << 20

// ReadResponse reads a JSON API response body up to MaxResponseSize
// bytes. Use instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}
