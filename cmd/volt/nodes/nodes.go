// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

// Package nodes implements the node inspection commands.
package nodes

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/voltmarket/volt/cmd/volt/cli"
)

// Command returns the "nodes" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "nodes",
		Summary: "Inspect provisioned nodes",
		Usage:   "volt nodes <subcommand> [flags]",
		Subcommands: []*cli.Command{
			listCommand(),
		},
	}
}

type listParams struct {
	cli.JSONOutput
	Cluster string `flag:"cluster" desc:"only show nodes in this cluster"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List your nodes",
		Usage:   "volt nodes list [flags]",
		Examples: []cli.Example{
			{
				Description: "List all nodes",
				Command:     "volt nodes list",
			},
			{
				Description: "List nodes in one cluster, as JSON",
				Command:     "volt nodes list --cluster us-east-1 --json",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			connection, err := cli.ConnectAPI(logger)
			if err != nil {
				return err
			}
			defer connection.Close()

			nodes, err := connection.Client.ListNodes(ctx)
			if err != nil {
				return cli.WrapAPIError(err)
			}
			if params.Cluster != "" {
				filtered := nodes[:0]
				for _, node := range nodes {
					if node.ClusterName == params.Cluster {
						filtered = append(filtered, node)
					}
				}
				nodes = filtered
			}

			if done, err := params.EmitJSON(nodes); done {
				return err
			}

			if len(nodes) == 0 {
				fmt.Println("No nodes found")
				return nil
			}
			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "NAME\tSTATUS\tTYPE\tGPUS\tCLUSTER\tSTART\tEND")
			for _, node := range nodes {
				cluster := node.ClusterName
				if cluster == "" {
					cluster = "-"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
					node.Name, node.Status, node.InstanceType, node.GPUCount,
					cluster, cli.FormatTime(node.StartAt), cli.FormatTime(node.EndAt))
			}
			return writer.Flush()
		},
	}
}
