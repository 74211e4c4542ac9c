// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

// Package clusters implements the Kubernetes cluster commands:
// listing clusters, adding cluster users, and generating the local
// kubeconfig from decrypted cluster credentials.
package clusters

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/voltmarket/volt/cmd/volt/cli"
)

// Command returns the "clusters" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "clusters",
		Summary: "Manage Kubernetes clusters and credentials",
		Description: `Inspect marketplace clusters and wire them into kubectl.

Typical flow: generate a local keypair ("volt keys generate"), register
a cluster user ("volt clusters users add"), then pull the credentials
into ~/.kube/config ("volt clusters config generate").`,
		Usage: "volt clusters <subcommand> [flags]",
		Subcommands: []*cli.Command{
			listCommand(),
			usersCommand(),
			configCommand(),
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
		Summary: "List available clusters",
		Usage:   "volt clusters list [flags]",
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

			clusters, err := connection.Client.ListClusters(ctx)
			if err != nil {
				return cli.WrapAPIError(err)
			}

			if done, err := params.EmitJSON(clusters); done {
				return err
			}

			if len(clusters) == 0 {
				fmt.Println("No clusters found")
				return nil
			}
			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "NAME\tAPI SERVER\tNAMESPACE")
			for _, cluster := range clusters {
				namespace := cluster.KubernetesNamespace
				if namespace == "" {
					namespace = "-"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\n", cluster.Name, cluster.KubernetesAPIURL, namespace)
			}
			return writer.Flush()
		},
	}
}
