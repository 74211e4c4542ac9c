// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

// Package orders implements the order book commands: listing and
// cancelling orders, and the top-level buy and sell entry points.
package orders

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/voltmarket/volt/cmd/volt/cli"
	"github.com/voltmarket/volt/lib/api"
)

// Command returns the "orders" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "orders",
		Summary: "Inspect and manage orders",
		Description: `List and cancel marketplace orders.

Use "volt buy" and "volt sell" to place new orders.`,
		Usage: "volt orders <subcommand> [flags]",
		Subcommands: []*cli.Command{
			listCommand(),
			cancelCommand(),
		},
	}
}

type listParams struct {
	cli.JSONOutput
	Side string `flag:"side" desc:"only show orders on this side (buy or sell)"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List your orders",
		Usage:   "volt orders list [flags]",
		Examples: []cli.Example{
			{
				Description: "List all orders",
				Command:     "volt orders list",
			},
			{
				Description: "List only sell orders, as JSON",
				Command:     "volt orders list --side sell --json",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if params.Side != "" && params.Side != "buy" && params.Side != "sell" {
				return cli.Validation("invalid --side %q: must be buy or sell", params.Side)
			}

			connection, err := cli.ConnectAPI(logger)
			if err != nil {
				return err
			}
			defer connection.Close()

			orders, err := connection.Client.ListOrders(ctx)
			if err != nil {
				return cli.WrapAPIError(err)
			}
			if params.Side != "" {
				filtered := orders[:0]
				for _, order := range orders {
					if order.Side == params.Side {
						filtered = append(filtered, order)
					}
				}
				orders = filtered
			}

			if done, err := params.EmitJSON(orders); done {
				return err
			}

			if len(orders) == 0 {
				fmt.Println("No orders found")
				return nil
			}
			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tSIDE\tSTATUS\tTYPE\tQTY\t$/GPU/HR\tSTART\tEND")
			for _, order := range orders {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
					order.ID, order.Side, order.Status, order.InstanceType,
					order.Quantity, cli.FormatCents(order.PriceCents),
					cli.FormatTime(order.StartAt), cli.FormatTime(order.EndAt))
			}
			return writer.Flush()
		},
	}
}

type cancelParams struct {
	cli.JSONOutput
}

func cancelCommand() *cli.Command {
	var params cancelParams

	return &cli.Command{
		Name:    "cancel",
		Summary: "Cancel an open order",
		Usage:   "volt orders cancel <order-id>",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) < 1 {
				return cli.Validation("order id is required\n\nUsage: volt orders cancel <order-id>")
			}
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}
			orderID := args[0]

			connection, err := cli.ConnectAPI(logger)
			if err != nil {
				return err
			}
			defer connection.Close()

			if err := connection.Client.CancelOrder(ctx, orderID); err != nil {
				return cli.WrapAPIError(err)
			}

			if done, err := params.EmitJSON(map[string]string{"id": orderID, "status": "cancelled"}); done {
				return err
			}
			fmt.Printf("Cancelled order %s\n", orderID)
			return nil
		},
	}
}

// printOrder renders one order as a key/value block, used by buy and
// sell after order placement.
func printOrder(order *api.Order) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "ID:\t%s\n", order.ID)
	fmt.Fprintf(writer, "Side:\t%s\n", order.Side)
	fmt.Fprintf(writer, "Status:\t%s\n", order.Status)
	fmt.Fprintf(writer, "Type:\t%s\n", order.InstanceType)
	fmt.Fprintf(writer, "Quantity:\t%d\n", order.Quantity)
	fmt.Fprintf(writer, "Price:\t%s/GPU/hr\n", cli.FormatCents(order.PriceCents))
	if !order.StartAt.IsZero() {
		fmt.Fprintf(writer, "Start:\t%s\n", cli.FormatTime(order.StartAt))
	}
	if !order.EndAt.IsZero() {
		fmt.Fprintf(writer, "End:\t%s\n", cli.FormatTime(order.EndAt))
	}
	writer.Flush()
}
