// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "volt",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "orders",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "orders"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"orders"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "orders" {
		t.Errorf("dispatched to %q, want %q", called, "orders")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "volt",
		Subcommands: []*Command{
			{
				Name: "clusters",
				Subcommands: []*Command{
					{
						Name: "list",
						Run: func(_ context.Context, args []string, _ *slog.Logger) error {
							called = "clusters list"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"clusters", "list", "extra-arg"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "clusters list" {
		t.Errorf("dispatched to %q, want %q", called, "clusters list")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "extra-arg" {
		t.Errorf("args = %v, want [extra-arg]", receivedArgs)
	}
}

func TestCommand_Execute_ParamsFlagParsing(t *testing.T) {
	type params struct {
		Cluster string `flag:"cluster" desc:"cluster name"`
	}
	var p params
	var positional []string

	command := &Command{
		Name:   "generate",
		Params: func() any { return &p },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			positional = args
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"--cluster", "east", "extra"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if p.Cluster != "east" {
		t.Errorf("cluster = %q, want east", p.Cluster)
	}
	if len(positional) != 1 || positional[0] != "extra" {
		t.Errorf("args = %v, want [extra]", positional)
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "volt",
		Subcommands: []*Command{
			{Name: "orders", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
			{Name: "nodes", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
		},
	}

	err := root.Execute(context.Background(), []string{"ordres"})
	if err == nil {
		t.Fatal("expected error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), `did you mean "orders"`) {
		t.Errorf("error %q should suggest orders", err)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	type params struct {
		Print bool `flag:"print" desc:"print to stdout"`
	}
	var p params

	command := &Command{
		Name:   "generate",
		Params: func() any { return &p },
		Run:    func(context.Context, []string, *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--pritn"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "--print") {
		t.Errorf("error %q should suggest --print", err)
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name: "volt",
		Subcommands: []*Command{
			{Name: "orders", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
		},
	}

	if err := root.Execute(context.Background(), nil); err == nil {
		t.Fatal("expected error when no subcommand given")
	}
}

func TestCommand_Execute_HelpFlagIsNotAnError(t *testing.T) {
	root := &Command{
		Name:    "volt",
		Summary: "marketplace CLI",
		Subcommands: []*Command{
			{Name: "orders", Summary: "manage orders", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
		},
	}

	for _, flag := range []string{"--help", "-h", "help"} {
		if err := root.Execute(context.Background(), []string{flag}); err != nil {
			t.Errorf("Execute(%q) error: %v", flag, err)
		}
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	type params struct {
		Print bool `flag:"print" desc:"write to stdout instead of the kubeconfig file"`
	}
	var p params

	command := &Command{
		Name:        "generate",
		Summary:     "Generate a kubeconfig",
		Description: "Fetch clusters and credentials and assemble a kubeconfig.",
		Params:      func() any { return &p },
		Examples: []Example{
			{Description: "Print instead of writing", Command: "volt clusters config generate --print"},
		},
	}

	var help bytes.Buffer
	command.PrintHelp(&help)

	for _, want := range []string{
		"Fetch clusters and credentials",
		"--print",
		"volt clusters config generate --print",
	} {
		if !strings.Contains(help.String(), want) {
			t.Errorf("help output missing %q:\n%s", want, help.String())
		}
	}
}
