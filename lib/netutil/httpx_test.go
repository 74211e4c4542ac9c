// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// failReader always returns an error on Read.
type failReader struct{}

func (*failReader) Read([]byte) (int, error) {
	return 0, fmt.Errorf("simulated read failure")
}

func TestReadResponse(t *testing.T) {
	data, err := ReadResponse(bytes.NewReader([]byte(`{"data":[]}`)))
	if err != nil {
		t.Fatalf("ReadResponse: %v", err)
	}
	if string(data) != `{"data":[]}` {
		t.Errorf("body = %q", data)
	}

	if _, err := ReadResponse(&failReader{}); err == nil {
		t.Error("read error should propagate")
	}
}

func TestReadResponseLargeBody(t *testing.T) {
	body := strings.Repeat("x", 1<<20)
	data, err := ReadResponse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("ReadResponse: %v", err)
	}
	if len(data) != len(body) {
		t.Errorf("read %d bytes, want %d", len(data), len(body))
	}
}
