// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewFromBytes_CopiesAndZerosSource(t *testing.T) {
	source := []byte("marketplace-private-key")
	buffer, err := NewFromBytes(source)
	if err != nil {
		t.Fatalf("NewFromBytes() error: %v", err)
	}
	defer buffer.Close()

	if got := buffer.String(); got != "marketplace-private-key" {
		t.Errorf("String() = %q, want %q", got, "marketplace-private-key")
	}

	// The caller's slice must no longer hold the secret.
	for i, b := range source {
		if b != 0 {
			t.Errorf("source[%d] = %d, want 0 (source not zeroed)", i, b)
			break
		}
	}
}

func TestNewFromBytes_Empty(t *testing.T) {
	if _, err := NewFromBytes(nil); err == nil {
		t.Error("NewFromBytes(nil) should return error")
	}
	if _, err := NewFromBytes([]byte{}); err == nil {
		t.Error("NewFromBytes(empty) should return error")
	}
}

func TestNew_InvalidSize(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Error("New(0) should return error")
	}
	if _, err := New(-1); err == nil {
		t.Error("New(-1) should return error")
	}
}

func TestBuffer_Len(t *testing.T) {
	buffer, err := NewFromBytes([]byte("12345"))
	if err != nil {
		t.Fatalf("NewFromBytes() error: %v", err)
	}
	defer buffer.Close()

	if got := buffer.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
}

func TestBuffer_CloseIdempotent(t *testing.T) {
	buffer, err := NewFromBytes([]byte("secret"))
	if err != nil {
		t.Fatalf("NewFromBytes() error: %v", err)
	}

	if err := buffer.Close(); err != nil {
		t.Errorf("first Close() error: %v", err)
	}
	if err := buffer.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}

func TestBuffer_AccessAfterClosePanics(t *testing.T) {
	buffer, err := NewFromBytes([]byte("secret"))
	if err != nil {
		t.Fatalf("NewFromBytes() error: %v", err)
	}
	buffer.Close()

	defer func() {
		if recover() == nil {
			t.Error("Bytes() after Close should panic")
		}
	}()
	buffer.Bytes()
}

func TestReadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("  tok-abc123\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	buffer, err := ReadFromPath(path)
	if err != nil {
		t.Fatalf("ReadFromPath() error: %v", err)
	}
	defer buffer.Close()

	if got := buffer.String(); got != "tok-abc123" {
		t.Errorf("ReadFromPath() = %q, want whitespace-trimmed %q", got, "tok-abc123")
	}
}

func TestReadFromPath_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	if _, err := ReadFromPath(path); err == nil {
		t.Error("ReadFromPath(whitespace-only file) should return error")
	}
}

func TestReadFromPath_MissingFile(t *testing.T) {
	if _, err := ReadFromPath(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("ReadFromPath(missing file) should return error")
	}
}
