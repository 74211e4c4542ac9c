// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
)

// Error is a structured error response from the marketplace API.
// Callers use errors.As to extract the structured information:
//
//	var apiErr *api.Error
//	if errors.As(err, &apiErr) {
//	    if apiErr.Code == api.ErrCodeUnauthorized { ... }
//	}
type Error struct {
	// Code is the machine-readable error code.
	Code string `json:"code"`
	// Message is the human-readable description from the server.
	Message string `json:"message"`
	// StatusCode is the HTTP status of the response.
	StatusCode int `json:"-"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Marketplace API error codes.
const (
	ErrCodeUnauthorized      = "unauthorized"
	ErrCodeForbidden         = "forbidden"
	ErrCodeNotFound          = "not_found"
	ErrCodeInvalidRequest    = "invalid_request"
	ErrCodeInsufficientFunds = "insufficient_funds"
	ErrCodeRateLimited       = "rate_limited"
)

// IsError reports whether err is a *Error with the given code.
func IsError(err error, code string) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}
