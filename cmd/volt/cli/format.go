// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatCents renders a USD cent amount as a dollar string, e.g. 12345
// becomes "$123.45". Negative amounts keep the sign before the dollar
// sign: "-$0.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// ParseDollars parses a dollar amount like "2.50", "$2.50", or "3"
// into US cents. At most two decimal places are accepted; prices on
// the marketplace have cent granularity.
func ParseDollars(input string) (int64, error) {
	s := strings.TrimPrefix(strings.TrimSpace(input), "$")
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}
	whole, fraction, hasFraction := strings.Cut(s, ".")
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", input)
	}
	if !hasFraction {
		return dollars * 100, nil
	}
	if len(fraction) == 0 || len(fraction) > 2 {
		return 0, fmt.Errorf("invalid price %q: use at most two decimal places", input)
	}
	cents, err := strconv.ParseInt(fraction, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", input)
	}
	if len(fraction) == 1 {
		cents *= 10
	}
	if dollars < 0 || strings.HasPrefix(whole, "-") {
		return dollars*100 - cents, nil
	}
	return dollars*100 + cents, nil
}

// FormatTime renders a timestamp for table output in the local
// timezone. The zero time renders as "-".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
