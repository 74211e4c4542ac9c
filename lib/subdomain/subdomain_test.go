// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package subdomain

import (
	"strings"
	"testing"
)

func TestIsValid(t *testing.T) {
	valid := []string{
		"a",
		"9",
		"abc",
		"a-b",
		"a--b",
		"abc.def",
		"a1.b2.c3",
		"gpu-cluster-01.voltmarket.dev",
		strings.Repeat("a", 63),
		strings.Repeat("a", 63) + "." + strings.Repeat("b", 63),
	}
	for _, name := range valid {
		if !IsValid(name) {
			t.Errorf("IsValid(%q) = false, want true", name)
		}
	}

	invalid := []string{
		"",
		".",
		"a..b",   // empty label
		".abc",   // leading dot
		"abc.",   // trailing dot
		"-abc",   // label starts with hyphen
		"abc-",   // label ends with hyphen
		"a.-b",   // label starts with hyphen
		"a.b-.c", // label ends with hyphen
		"ABC",    // uppercase
		"a_b",    // underscore
		"a b",    // space
		"a.b!",   // punctuation
		strings.Repeat("a", 64),                    // label too long
		"a." + strings.Repeat("b", 64),             // second label too long
		strings.Repeat(strings.Repeat("a", 9)+".", 26), // over 253 total
	}
	for _, name := range invalid {
		if IsValid(name) {
			t.Errorf("IsValid(%q) = true, want false", name)
		}
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"already-valid", "already-valid"},
		{"Already-Valid", "already-valid"},
		{"GPU Cluster 01", "gpu-cluster-01"},
		{"user@voltmarket.dev", "user-voltmarket.dev"},
		{"a__b", "a-b"},     // replacement then run collapse
		{"a...b", "a.b"},    // dot run collapse
		{"-abc", "xabc"},    // stripped leading hyphen anchored
		{"abc-", "abcx"},    // stripped trailing hyphen anchored
		{"-abc-", "xabcx"},  // both sides
		{"---", "x"},        // all-hyphen label
		{"a.---.b", "a.x.b"},
		{".abc", "x.abc"},   // leading dot anchored
		{"abc.", "abc.x"},   // trailing dot anchored
		{".", "x.x"},
		{"  ", "x"},         // whitespace becomes hyphens, collapses, all-hyphen
	}
	for _, c := range cases {
		if got := Sanitize(c.input); got != c.want {
			t.Errorf("Sanitize(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

// Sanitize("") returns "" which IsValid rejects. This is intentional:
// an empty input carries no name to derive, and silently inventing one
// would hide caller bugs.
func TestSanitize_EmptyInputStaysEmpty(t *testing.T) {
	if got := Sanitize(""); got != "" {
		t.Errorf("Sanitize(\"\") = %q, want \"\"", got)
	}
	if IsValid(Sanitize("")) {
		t.Error("IsValid(Sanitize(\"\")) = true, want false")
	}
}

func TestSanitize_TruncatesLongLabels(t *testing.T) {
	got := Sanitize(strings.Repeat("a", 100))
	if len(got) != 63 {
		t.Errorf("len = %d, want 63", len(got))
	}
	if !IsValid(got) {
		t.Errorf("Sanitize(long label) = %q, not valid", got)
	}

	// Truncation at a hyphen boundary must not leave a trailing hyphen.
	got = Sanitize(strings.Repeat("a", 62) + "-" + strings.Repeat("b", 10))
	if !IsValid(got) {
		t.Errorf("Sanitize(hyphen at cut point) = %q, not valid", got)
	}
}

func TestSanitize_TruncatesWholeName(t *testing.T) {
	long := strings.Repeat(strings.Repeat("a", 9)+".", 40) + "end"
	got := Sanitize(long)
	if len(got) > 253 {
		t.Errorf("len = %d, want <= 253", len(got))
	}
	if !IsValid(got) {
		t.Errorf("Sanitize(long name) = %q, not valid", got)
	}
}

func TestSanitize_RoundTrip(t *testing.T) {
	inputs := []string{
		"Simple",
		"user@example.com",
		"cluster/us-west-2a",
		"--weird--input--",
		"...",
		"!!!",
		"NVIDIA H100 x8",
		"日本語クラスタ",
		"mixed 日本語 and ascii",
		strings.Repeat("x-", 200),
		"\ttabs\tand\nnewlines\n",
	}
	for _, input := range inputs {
		got := Sanitize(input)
		if !IsValid(got) {
			t.Errorf("IsValid(Sanitize(%q)) = false, got %q", input, got)
		}
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{"Simple", "user@example.com", "--weird--", "a.b.c"}
	for _, input := range inputs {
		once := Sanitize(input)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize(Sanitize(%q)) = %q, want %q", input, twice, once)
		}
	}
}
