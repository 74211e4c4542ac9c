// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voltmarket/volt/cmd/volt/cli"
)

type whoamiParams struct {
	cli.JSONOutput
}

// WhoamiCommand returns the "whoami" command, which verifies the saved
// token and prints the authenticated account.
func WhoamiCommand() *cli.Command {
	var params whoamiParams

	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the authenticated account",
		Usage:   "volt whoami [flags]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			connection, err := cli.ConnectAPI(logger)
			if err != nil {
				return err
			}
			defer connection.Close()

			account, err := connection.Client.Whoami(ctx)
			if err != nil {
				return cli.WrapAPIError(err)
			}

			if done, err := params.EmitJSON(account); done {
				return err
			}

			fmt.Printf("%s (%s)\n", account.Email, account.ID)
			if account.Name != "" {
				fmt.Printf("Name: %s\n", account.Name)
			}
			return nil
		},
	}
}
