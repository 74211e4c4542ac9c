// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

// Package keys implements the local keypair commands. The keypair
// protects cluster credentials: the marketplace encrypts each
// credential secret to the public key, and only the machine holding
// the private key can decrypt it.
package keys

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voltmarket/volt/cmd/volt/cli"
	"github.com/voltmarket/volt/lib/config"
	keystore "github.com/voltmarket/volt/lib/keys"
)

// Command returns the "keys" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "keys",
		Summary: "Manage the local credential keypair",
		Usage:   "volt keys <subcommand> [flags]",
		Subcommands: []*cli.Command{
			generateCommand(),
			showCommand(),
		},
	}
}

// resolveKeysDir picks the keypair directory without requiring a
// login: key management works before any token is saved.
func resolveKeysDir() (string, error) {
	path, err := config.Path()
	if err != nil {
		return "", cli.Internal("resolving config path: %w", err)
	}
	loaded, err := config.Load(path)
	if err != nil {
		return "", cli.Internal("loading config: %w", err)
	}
	if loaded.KeysDir != "" {
		return loaded.KeysDir, nil
	}
	dir, err := keystore.DefaultDir()
	if err != nil {
		return "", cli.Internal("resolving keys directory: %w", err)
	}
	return dir, nil
}

type generateParams struct {
	cli.JSONOutput
}

func generateCommand() *cli.Command {
	var params generateParams

	return &cli.Command{
		Name:    "generate",
		Summary: "Generate a credential keypair",
		Description: `Generate the local keypair used to receive cluster credentials.

The private key never leaves this machine. Generation refuses to
overwrite an existing keypair: credentials already encrypted to the
old public key would become undecryptable.`,
		Usage: "volt keys generate [flags]",
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			dir, err := resolveKeysDir()
			if err != nil {
				return err
			}
			keypair, err := keystore.Generate(dir)
			if err != nil {
				return cli.Validation("%v", err)
			}
			defer keypair.Close()

			fingerprint, err := keystore.Fingerprint(keypair.PublicKey)
			if err != nil {
				return cli.Internal("fingerprinting public key: %w", err)
			}

			done, err := params.EmitJSON(map[string]string{
				"public_key":  keypair.PublicKey,
				"fingerprint": fingerprint,
				"dir":         dir,
			})
			if done {
				return err
			}
			fmt.Printf("Generated keypair in %s\n", dir)
			fmt.Printf("Public key:  %s\n", keypair.PublicKey)
			fmt.Printf("Fingerprint: %s\n", fingerprint)
			return nil
		},
	}
}

type showParams struct {
	cli.JSONOutput
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show the public key",
		Usage:   "volt keys show [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			dir, err := resolveKeysDir()
			if err != nil {
				return err
			}
			publicKey, err := keystore.LoadPublic(dir)
			if err != nil {
				return cli.Validation("%v", err)
			}
			fingerprint, err := keystore.Fingerprint(publicKey)
			if err != nil {
				return cli.Internal("fingerprinting public key: %w", err)
			}

			done, err := params.EmitJSON(map[string]string{
				"public_key":  publicKey,
				"fingerprint": fingerprint,
				"dir":         dir,
			})
			if done {
				return err
			}
			fmt.Printf("Public key:  %s\n", publicKey)
			fmt.Printf("Fingerprint: %s\n", fingerprint)
			return nil
		},
	}
}
