// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"
	"time"
)

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{100, "$1.00"},
		{12345, "$123.45"},
		{-50, "-$0.50"},
		{-12345, "-$123.45"},
	}
	for _, c := range cases {
		if got := FormatCents(c.cents); got != c.want {
			t.Errorf("FormatCents(%d) = %q, want %q", c.cents, got, c.want)
		}
	}
}

func TestParseDollars(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"3", 300},
		{"2.50", 250},
		{"$2.50", 250},
		{"0.05", 5},
		{"1.5", 150},
		{" 12 ", 1200},
		{"-1.25", -125},
	}
	for _, c := range cases {
		got, err := ParseDollars(c.input)
		if err != nil {
			t.Errorf("ParseDollars(%q): unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseDollars(%q) = %d, want %d", c.input, got, c.want)
		}
	}

	for _, input := range []string{"", "$", "abc", "1.234", "1.", "2,50"} {
		if _, err := ParseDollars(input); err == nil {
			t.Errorf("ParseDollars(%q): expected error", input)
		}
	}
}

func TestFormatTimeZero(t *testing.T) {
	if got := FormatTime(time.Time{}); got != "-" {
		t.Errorf("FormatTime(zero) = %q, want \"-\"", got)
	}
}
