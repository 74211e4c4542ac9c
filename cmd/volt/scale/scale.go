// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

// Package scale implements the procurement commands. A procurement is
// an auto-scaling buy policy: the marketplace keeps a target quantity
// of an instance type provisioned, buying at or below a price ceiling.
package scale

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/voltmarket/volt/cmd/volt/cli"
	"github.com/voltmarket/volt/lib/api"
)

// Command returns the "scale" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "scale",
		Summary: "Manage auto-scaling procurements",
		Description: `Create and adjust procurements.

A procurement continuously keeps a target quantity of an instance type
provisioned, placing buy orders at or below your price ceiling as
capacity comes and goes. Set the quantity to 0 to wind one down.`,
		Usage: "volt scale <subcommand> [flags]",
		Subcommands: []*cli.Command{
			listCommand(),
			createCommand(),
			updateCommand(),
		},
	}
}

type listParams struct {
	cli.JSONOutput
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List procurements",
		Usage:   "volt scale list [flags]",
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

			procurements, err := connection.Client.ListProcurements(ctx)
			if err != nil {
				return cli.WrapAPIError(err)
			}

			if done, err := params.EmitJSON(procurements); done {
				return err
			}

			if len(procurements) == 0 {
				fmt.Println("No procurements found")
				return nil
			}
			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tSTATUS\tTYPE\tTARGET\tCURRENT\tMAX $/GPU/HR")
			for _, procurement := range procurements {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%d\t%s\n",
					procurement.ID, procurement.Status, procurement.InstanceType,
					procurement.Quantity, procurement.CurrentQuantity,
					cli.FormatCents(procurement.MaxPriceCents))
			}
			return writer.Flush()
		},
	}
}

type createParams struct {
	cli.JSONOutput
	Quantity int    `flag:"quantity,n" desc:"target number of nodes" default:"1"`
	MaxPrice string `flag:"max-price"  desc:"price ceiling per GPU-hour, in dollars (e.g. 3.00)"`
}

func createCommand() *cli.Command {
	var params createParams

	return &cli.Command{
		Name:    "create",
		Summary: "Create a procurement",
		Usage:   "volt scale create <instance-type> [flags]",
		Examples: []cli.Example{
			{
				Description: "Keep eight H100 nodes provisioned at up to $4/GPU/hr",
				Command:     "volt scale create h100 -n 8 --max-price 4.00",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) < 1 {
				return cli.Validation("instance type is required\n\nUsage: volt scale create <instance-type> [flags]")
			}
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}
			if params.Quantity < 0 {
				return cli.Validation("--quantity must not be negative")
			}
			if params.MaxPrice == "" {
				return cli.Validation("--max-price is required")
			}
			maxPriceCents, err := cli.ParseDollars(params.MaxPrice)
			if err != nil {
				return cli.Validation("--max-price: %v", err)
			}
			if maxPriceCents <= 0 {
				return cli.Validation("--max-price must be positive")
			}

			connection, err := cli.ConnectAPI(logger)
			if err != nil {
				return err
			}
			defer connection.Close()

			procurement, err := connection.Client.CreateProcurement(ctx, api.ProcurementRequest{
				InstanceType:  args[0],
				Quantity:      &params.Quantity,
				MaxPriceCents: &maxPriceCents,
			})
			if err != nil {
				return cli.WrapAPIError(err)
			}

			if done, err := params.EmitJSON(procurement); done {
				return err
			}
			printProcurement(procurement)
			return nil
		},
	}
}

type updateParams struct {
	cli.JSONOutput
	Quantity int    `flag:"quantity,n" desc:"new target number of nodes (0 winds the procurement down)" default:"-1"`
	MaxPrice string `flag:"max-price"  desc:"new price ceiling per GPU-hour, in dollars"`
}

func updateCommand() *cli.Command {
	var params updateParams

	return &cli.Command{
		Name:    "update",
		Summary: "Adjust a procurement",
		Usage:   "volt scale update <procurement-id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Scale a procurement down to two nodes",
				Command:     "volt scale update proc_123 -n 2",
			},
			{
				Description: "Raise the price ceiling",
				Command:     "volt scale update proc_123 --max-price 5.00",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) < 1 {
				return cli.Validation("procurement id is required\n\nUsage: volt scale update <procurement-id> [flags]")
			}
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}

			var request api.ProcurementRequest
			if params.Quantity >= 0 {
				quantity := params.Quantity
				request.Quantity = &quantity
			}
			if params.MaxPrice != "" {
				maxPriceCents, err := cli.ParseDollars(params.MaxPrice)
				if err != nil {
					return cli.Validation("--max-price: %v", err)
				}
				if maxPriceCents <= 0 {
					return cli.Validation("--max-price must be positive")
				}
				request.MaxPriceCents = &maxPriceCents
			}
			if request.Quantity == nil && request.MaxPriceCents == nil {
				return cli.Validation("nothing to update: pass --quantity and/or --max-price")
			}

			connection, err := cli.ConnectAPI(logger)
			if err != nil {
				return err
			}
			defer connection.Close()

			procurement, err := connection.Client.UpdateProcurement(ctx, args[0], request)
			if err != nil {
				return cli.WrapAPIError(err)
			}

			if done, err := params.EmitJSON(procurement); done {
				return err
			}
			printProcurement(procurement)
			return nil
		},
	}
}

func printProcurement(procurement *api.Procurement) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "ID:\t%s\n", procurement.ID)
	fmt.Fprintf(writer, "Status:\t%s\n", procurement.Status)
	fmt.Fprintf(writer, "Type:\t%s\n", procurement.InstanceType)
	fmt.Fprintf(writer, "Target:\t%d\n", procurement.Quantity)
	fmt.Fprintf(writer, "Current:\t%d\n", procurement.CurrentQuantity)
	fmt.Fprintf(writer, "Ceiling:\t%s/GPU/hr\n", cli.FormatCents(procurement.MaxPriceCents))
	writer.Flush()
}
