// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package orders

import (
	"strings"
	"testing"
	"time"
)

func TestBuildOrderRequest(t *testing.T) {
	request, err := buildOrderRequest("buy", []string{"a100-80gb"}, 2, "2.50", "2026-08-29T22:00:00Z", "24h")
	if err != nil {
		t.Fatalf("buildOrderRequest: %v", err)
	}
	if request.Side != "buy" || request.InstanceType != "a100-80gb" {
		t.Errorf("side/type = %q/%q", request.Side, request.InstanceType)
	}
	if request.Quantity != 2 {
		t.Errorf("quantity = %d, want 2", request.Quantity)
	}
	if request.PriceCents != 250 {
		t.Errorf("price = %d cents, want 250", request.PriceCents)
	}
	start, _ := time.Parse(time.RFC3339, "2026-08-29T22:00:00Z")
	if !request.StartAt.Equal(start) {
		t.Errorf("start = %v, want %v", request.StartAt, start)
	}
	if !request.EndAt.Equal(start.Add(24 * time.Hour)) {
		t.Errorf("end = %v, want start+24h", request.EndAt)
	}
}

func TestBuildOrderRequestDefaultsStartToNow(t *testing.T) {
	before := time.Now()
	request, err := buildOrderRequest("sell", []string{"h100"}, 1, "4.00", "", "1h")
	if err != nil {
		t.Fatalf("buildOrderRequest: %v", err)
	}
	if request.StartAt.Before(before) || request.StartAt.After(time.Now()) {
		t.Errorf("start %v not between %v and now", request.StartAt, before)
	}
	if got := request.EndAt.Sub(*request.StartAt); got != time.Hour {
		t.Errorf("end-start = %v, want 1h", got)
	}
}

func TestBuildOrderRequestValidation(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		quantity int
		price    string
		start    string
		duration string
		wantErr  string
	}{
		{"missing instance type", nil, 1, "2.50", "", "1h", "instance type is required"},
		{"extra argument", []string{"a100", "b200"}, 1, "2.50", "", "1h", "unexpected argument"},
		{"zero quantity", []string{"a100"}, 0, "2.50", "", "1h", "--quantity"},
		{"missing price", []string{"a100"}, 1, "", "", "1h", "--price is required"},
		{"malformed price", []string{"a100"}, 1, "2,50", "", "1h", "--price"},
		{"zero price", []string{"a100"}, 1, "0", "", "1h", "--price must be positive"},
		{"malformed start", []string{"a100"}, 1, "2.50", "tonight", "1h", "--start"},
		{"malformed duration", []string{"a100"}, 1, "2.50", "", "one hour", "--duration"},
		{"negative duration", []string{"a100"}, 1, "2.50", "", "-1h", "--duration must be positive"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := buildOrderRequest("buy", c.args, c.quantity, c.price, c.start, c.duration)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Errorf("error %q does not mention %q", err, c.wantErr)
			}
		})
	}
}

func TestOrderFinished(t *testing.T) {
	for _, status := range []string{"filled", "cancelled", "expired", "rejected"} {
		if !orderFinished(status) {
			t.Errorf("orderFinished(%q) = false", status)
		}
	}
	for _, status := range []string{"open", "pending", ""} {
		if orderFinished(status) {
			t.Errorf("orderFinished(%q) = true", status)
		}
	}
}
