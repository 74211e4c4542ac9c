// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the volt CLI.
//
// The central type is [Command], which represents a named subcommand
// with optional nested [Command.Subcommands], a params struct bound to
// flags via struct tags, and a Run function. Commands are assembled
// into a tree in cmd/volt/commands and dispatched via
// [Command.Execute], which handles flag parsing, subcommand routing,
// and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework
// computes Levenshtein edit distance against all known names and
// suggests the closest match (threshold: distance <= 3). This is
// implemented in suggest.go.
//
// [ConnectAPI] is the shared entry point command packages use to get
// an authenticated marketplace API client from the local config file.
package cli
