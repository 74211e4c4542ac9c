// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete volt CLI command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	authcmd "github.com/voltmarket/volt/cmd/volt/auth"
	"github.com/voltmarket/volt/cmd/volt/cli"
	clusterscmd "github.com/voltmarket/volt/cmd/volt/clusters"
	keyscmd "github.com/voltmarket/volt/cmd/volt/keys"
	nodescmd "github.com/voltmarket/volt/cmd/volt/nodes"
	orderscmd "github.com/voltmarket/volt/cmd/volt/orders"
	scalecmd "github.com/voltmarket/volt/cmd/volt/scale"
	"github.com/voltmarket/volt/lib/version"
)

// Root builds and returns the complete volt CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "volt",
		Description: `volt: GPU compute marketplace client.

Buy and sell GPU compute, manage auto-scaling procurements, and wire
marketplace Kubernetes clusters into kubectl.`,
		Subcommands: []*cli.Command{
			authcmd.LoginCommand(),
			authcmd.WhoamiCommand(),
			authcmd.BalanceCommand(),
			orderscmd.BuyCommand(),
			orderscmd.SellCommand(),
			orderscmd.Command(),
			scalecmd.Command(),
			nodescmd.Command(),
			clusterscmd.Command(),
			keyscmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					fmt.Printf("volt %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Authenticate against the marketplace",
				Command:     "volt login",
			},
			{
				Description: "Buy an A100 node for an hour at up to $2.50/GPU/hr",
				Command:     "volt buy a100-80gb --price 2.50",
			},
			{
				Description: "Keep eight H100 nodes provisioned",
				Command:     "volt scale create h100 -n 8 --max-price 4.00",
			},
			{
				Description: "See your running nodes",
				Command:     "volt nodes list",
			},
			{
				Description: "Pull cluster credentials into ~/.kube/config",
				Command:     "volt clusters config generate",
			},
		},
	}
}
