// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voltmarket/volt/cmd/volt/cli"
)

type balanceParams struct {
	cli.JSONOutput
}

// BalanceCommand returns the "balance" command, which prints the
// account's available and reserved funds.
func BalanceCommand() *cli.Command {
	var params balanceParams

	return &cli.Command{
		Name:    "balance",
		Summary: "Show the account balance",
		Usage:   "volt balance [flags]",
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

			balance, err := connection.Client.Balance(ctx)
			if err != nil {
				return cli.WrapAPIError(err)
			}

			if done, err := params.EmitJSON(balance); done {
				return err
			}

			fmt.Printf("Available: %s\n", cli.FormatCents(balance.AvailableCents))
			if balance.ReservedCents != 0 {
				fmt.Printf("Reserved:  %s\n", cli.FormatCents(balance.ReservedCents))
			}
			return nil
		},
	}
}
