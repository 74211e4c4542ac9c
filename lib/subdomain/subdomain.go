// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

// Package subdomain validates and sanitizes strings against RFC 1123
// subdomain rules. Kubernetes object names (cluster, user, and context
// entries written into a kubeconfig) must be valid RFC 1123 subdomains:
// dot-separated labels of lowercase alphanumerics and hyphens, each
// label starting and ending with an alphanumeric, labels at most 63
// characters, the whole name at most 253.
//
// [IsValid] is the predicate; [Sanitize] maps an arbitrary string to a
// valid subdomain. Both are pure functions with no I/O.
package subdomain

import (
	"regexp"
	"strings"
)

const (
	// maxNameLength is the RFC 1123 limit for a full subdomain.
	maxNameLength = 253

	// maxLabelLength is the RFC 1123 limit for a single label.
	maxLabelLength = 63
)

// labelPattern matches one valid lowercase RFC 1123 label: starts and
// ends with an alphanumeric, interior characters alphanumeric or hyphen.
var subdomainPattern = regexp.MustCompile(
	`^[a-z0-9]([-a-z0-9]*[a-z0-9])?(\.[a-z0-9]([-a-z0-9]*[a-z0-9])?)*$`)

// IsValid reports whether s is a valid RFC 1123 subdomain. It returns
// false for the empty string, names over 253 characters, any label over
// 63 characters, empty labels (consecutive dots, leading or trailing
// dot), and any label that starts or ends with a hyphen or contains a
// character outside [a-z0-9-].
func IsValid(s string) bool {
	if s == "" || len(s) > maxNameLength {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if len(label) > maxLabelLength {
			return false
		}
	}
	return subdomainPattern.MatchString(s)
}

// Sanitize maps an arbitrary string to an RFC 1123 subdomain:
//
//  1. Lowercase the input.
//  2. Replace every character outside [a-z0-9.-] with a hyphen.
//  3. Collapse runs of hyphens and runs of dots to single characters.
//  4. Per label: replace an all-hyphen label with "x"; strip leading
//     and trailing hyphens, adding an "x" on whichever side hyphens
//     were stripped from; cap the label at 63 characters.
//  5. Prepend/append "x" if the whole result does not start/end with
//     an alphanumeric (a leading or trailing dot).
//  6. Cap the whole result at 253 characters.
//
// The empty string sanitizes to the empty string, which IsValid
// rejects. This asymmetry is deliberate: there is no meaningful name to
// derive from no input, and callers are expected to not pass empty
// names.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}

	lowered := strings.ToLower(s)

	var replaced strings.Builder
	replaced.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '-' {
			replaced.WriteRune(r)
		} else {
			replaced.WriteByte('-')
		}
	}

	collapsed := collapseRuns(replaced.String())

	labels := strings.Split(collapsed, ".")
	for i, label := range labels {
		labels[i] = sanitizeLabel(label)
	}
	result := strings.Join(labels, ".")

	// A leading or trailing dot survives label sanitation as an empty
	// first/last label. Anchor the result with an alphanumeric.
	if result != "" && !isAlphanumeric(result[0]) {
		result = "x" + result
	}
	if result != "" && !isAlphanumeric(result[len(result)-1]) {
		result += "x"
	}

	if len(result) > maxNameLength {
		result = strings.TrimRight(result[:maxNameLength], "-.")
	}

	return result
}

// sanitizeLabel makes a single label valid: all-hyphen labels become
// "x", boundary hyphens are stripped (with an "x" anchor on the
// stripped side), and the label is capped at 63 characters. Empty
// labels are returned as-is; Sanitize anchors them at the name level.
func sanitizeLabel(label string) string {
	if label == "" {
		return label
	}

	if strings.Trim(label, "-") == "" {
		return "x"
	}

	if trimmed := strings.TrimLeft(label, "-"); trimmed != label {
		label = "x" + trimmed
	}
	if trimmed := strings.TrimRight(label, "-"); trimmed != label {
		label = trimmed + "x"
	}

	if len(label) > maxLabelLength {
		// Truncation may expose a trailing hyphen.
		label = strings.TrimRight(label[:maxLabelLength], "-")
	}

	return label
}

// collapseRuns reduces runs of consecutive hyphens and consecutive dots
// to a single character each.
func collapseRuns(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	var previous byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c == '-' || c == '.') && c == previous {
			continue
		}
		out.WriteByte(c)
		previous = c
	}
	return out.String()
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
