// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestCommandErrorCategories(t *testing.T) {
	cases := []struct {
		err      *CommandError
		category ErrorCategory
	}{
		{Validation("bad input: %d", 7), CategoryValidation},
		{NotFound("order %s not found", "ord-1"), CategoryNotFound},
		{Forbidden("not logged in"), CategoryForbidden},
		{Transient("timeout"), CategoryTransient},
		{Internal("bug"), CategoryInternal},
	}
	for _, tc := range cases {
		if tc.err.Category != tc.category {
			t.Errorf("%v: category = %s, want %s", tc.err, tc.err.Category, tc.category)
		}
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	inner := errors.New("root cause")
	wrapped := Internal("outer: %w", inner)

	if !errors.Is(wrapped, inner) {
		t.Error("errors.Is should see through CommandError")
	}

	var commandErr *CommandError
	chain := fmt.Errorf("further wrapped: %w", wrapped)
	if !errors.As(chain, &commandErr) {
		t.Fatal("errors.As should find the CommandError in the chain")
	}
	if commandErr.Category != CategoryInternal {
		t.Errorf("category = %s, want internal", commandErr.Category)
	}
}

func TestCommandErrorMessageOmitsCategory(t *testing.T) {
	err := Validation("quantity must be positive")
	if err.Error() != "quantity must be positive" {
		t.Errorf("Error() = %q, want bare message", err.Error())
	}
}
