// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package orders

import (
	"context"
	"log/slog"

	"github.com/voltmarket/volt/cmd/volt/cli"
)

type sellParams struct {
	cli.JSONOutput
	Quantity int    `flag:"quantity,n" desc:"number of nodes"                               default:"1"`
	Price    string `flag:"price,p"    desc:"asking price per GPU-hour, in dollars (e.g. 2.50)"`
	Start    string `flag:"start"      desc:"reservation start, RFC 3339 (default: now)"`
	Duration string `flag:"duration,d" desc:"reservation length (e.g. 1h, 30m)"             default:"1h"`
}

// SellCommand returns the top-level "sell" command. Sell orders rest
// on the book until matched; there is no fill-wait since sellers are
// typically not interactive.
func SellCommand() *cli.Command {
	var params sellParams

	return &cli.Command{
		Name:    "sell",
		Summary: "Sell compute",
		Description: `Place a sell order offering GPU compute.

The order rests on the book until a matching buy order fills it or you
cancel it with "volt orders cancel".`,
		Usage: "volt sell <instance-type> [flags]",
		Examples: []cli.Example{
			{
				Description: "Offer four A100 nodes at $2.00/GPU/hr for twelve hours",
				Command:     "volt sell a100-80gb -n 4 --price 2.00 --duration 12h",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			request, err := buildOrderRequest("sell", args, params.Quantity, params.Price, params.Start, params.Duration)
			if err != nil {
				return err
			}

			connection, err := cli.ConnectAPI(logger)
			if err != nil {
				return err
			}
			defer connection.Close()

			order, err := connection.Client.CreateOrder(ctx, *request)
			if err != nil {
				return cli.WrapAPIError(err)
			}

			if done, err := params.EmitJSON(order); done {
				return err
			}
			printOrder(order)
			return nil
		},
	}
}
