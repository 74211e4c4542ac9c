// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package clusters

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/voltmarket/volt/cmd/volt/cli"
	"github.com/voltmarket/volt/lib/api"
	"github.com/voltmarket/volt/lib/keys"
	"github.com/voltmarket/volt/lib/subdomain"
)

func usersCommand() *cli.Command {
	return &cli.Command{
		Name:    "users",
		Summary: "Manage cluster users",
		Usage:   "volt clusters users <subcommand> [flags]",
		Subcommands: []*cli.Command{
			usersAddCommand(),
		},
	}
}

type usersAddParams struct {
	cli.JSONOutput
	Cluster string `flag:"cluster" desc:"cluster to create the user on (default: all clusters)"`
}

func usersAddCommand() *cli.Command {
	var params usersAddParams

	return &cli.Command{
		Name:    "add",
		Summary: "Register a cluster user",
		Description: `Register a Kubernetes user on a marketplace cluster.

The marketplace provisions the user and stores its secret encrypted to
your local public key; only your machine can decrypt it. The name is
sanitized to a valid DNS subdomain before submission, since it becomes
a Kubernetes object name.

Requires a local keypair ("volt keys generate").`,
		Usage: "volt clusters users add <name> [flags]",
		Examples: []cli.Example{
			{
				Description: "Register the user \"alice\" on every cluster",
				Command:     "volt clusters users add alice",
			},
			{
				Description: "Register a user on one cluster",
				Command:     "volt clusters users add alice --cluster us-east-1",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) < 1 {
				return cli.Validation("user name is required\n\nUsage: volt clusters users add <name> [flags]")
			}
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}

			username := subdomain.Sanitize(args[0])
			if !subdomain.IsValid(username) {
				return cli.Validation("user name %q cannot be turned into a valid DNS subdomain", args[0])
			}
			if username != args[0] {
				fmt.Fprintf(os.Stderr, "Using sanitized user name %q\n", username)
			}

			connection, err := cli.ConnectAPI(logger)
			if err != nil {
				return err
			}
			defer connection.Close()

			keysDir, err := connection.KeysDir()
			if err != nil {
				return cli.Internal("resolving keys directory: %w", err)
			}
			publicKey, err := keys.LoadPublic(keysDir)
			if err != nil {
				return cli.Validation("%v", err)
			}

			err = connection.Client.CreateCredential(ctx, api.CredentialRequest{
				Username:  username,
				Cluster:   params.Cluster,
				PublicKey: publicKey,
			})
			if err != nil {
				return cli.WrapAPIError(err)
			}

			if done, err := params.EmitJSON(map[string]string{"username": username, "status": "created"}); done {
				return err
			}
			fmt.Printf("Created user %q\n", username)
			fmt.Println("Run \"volt clusters config generate\" once the credential is issued.")
			return nil
		},
	}
}
