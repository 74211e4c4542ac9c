// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package clusters

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/voltmarket/volt/cmd/volt/cli"
	"github.com/voltmarket/volt/lib/api"
	"github.com/voltmarket/volt/lib/credential"
	"github.com/voltmarket/volt/lib/keys"
	"github.com/voltmarket/volt/lib/kubeconfig"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:    "config",
		Summary: "Generate kubectl configuration",
		Usage:   "volt clusters config <subcommand> [flags]",
		Subcommands: []*cli.Command{
			configGenerateCommand(),
		},
	}
}

type configGenerateParams struct {
	Print   bool   `flag:"print"   desc:"print the generated kubeconfig instead of writing it"`
	Cluster string `flag:"cluster" desc:"only include credentials for this cluster"`
	User    string `flag:"user"    desc:"only include credentials for this user name"`
	Output  string `flag:"output,o" desc:"kubeconfig path to merge into (default: ~/.kube/config)"`
}

func configGenerateCommand() *cli.Command {
	var params configGenerateParams

	return &cli.Command{
		Name:    "generate",
		Summary: "Build and merge your kubeconfig",
		Description: `Fetch cluster credentials, decrypt them with the local private key,
and merge the resulting entries into your kubeconfig.

The merge is additive per named entry: clusters, users, and contexts
you added by hand for other systems are left untouched, while entries
for marketplace clusters are refreshed in place. Credentials that fail
to decrypt (for example, ones issued to another machine's key) are
skipped with a warning.

With --print, the generated document is written to standard output and
the on-disk file is left alone.`,
		Usage: "volt clusters config generate [flags]",
		Examples: []cli.Example{
			{
				Description: "Merge all decryptable credentials into ~/.kube/config",
				Command:     "volt clusters config generate",
			},
			{
				Description: "Preview the config for one cluster",
				Command:     "volt clusters config generate --cluster us-east-1 --print",
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

			keysDir, err := connection.KeysDir()
			if err != nil {
				return cli.Internal("resolving keys directory: %w", err)
			}
			privateKey, err := keys.LoadPrivate(keysDir)
			if err != nil {
				return cli.Validation("%v", err)
			}
			defer privateKey.Close()

			clusters, err := connection.Client.ListClusters(ctx)
			if err != nil {
				return cli.WrapAPIError(err)
			}
			records, err := connection.Client.ListCredentials(ctx)
			if err != nil {
				return cli.WrapAPIError(err)
			}

			filter := &credential.Filter{
				ClusterName: params.Cluster,
				Username:    params.User,
			}
			decrypted := credential.FilterAndDecrypt(records, privateKey, filter, logger)
			if len(decrypted) == 0 {
				fmt.Println("No users found")
				return &cli.ExitError{Code: 1}
			}

			built := kubeconfig.Build(
				clusterInputs(clusters, params.Cluster),
				userInputs(decrypted),
				nil,
				logger,
			)

			if params.Print {
				return printKubeconfig(built)
			}

			path := params.Output
			if path == "" {
				path, err = kubeconfig.DefaultPath()
				if err != nil {
					return cli.Internal("%v", err)
				}
			}
			if _, err := kubeconfig.Sync(path, built); err != nil {
				return cli.Internal("updating %s: %w", path, err)
			}
			fmt.Printf("Wrote %d cluster(s) and %d user(s) to %s\n",
				len(built.Clusters), len(built.Users), path)
			return nil
		},
	}
}

// clusterInputs converts API cluster records into builder inputs,
// honoring the --cluster filter.
func clusterInputs(clusters []api.Cluster, only string) []kubeconfig.ClusterInput {
	inputs := make([]kubeconfig.ClusterInput, 0, len(clusters))
	for _, cluster := range clusters {
		if only != "" && cluster.Name != only {
			continue
		}
		inputs = append(inputs, kubeconfig.ClusterInput{
			Name:                     cluster.Name,
			KubernetesAPIURL:         cluster.KubernetesAPIURL,
			CertificateAuthorityData: cluster.KubernetesCACert,
			Namespace:                cluster.KubernetesNamespace,
		})
	}
	return inputs
}

// userInputs converts decrypted credentials into builder inputs.
func userInputs(decrypted []credential.Decrypted) []kubeconfig.UserInput {
	inputs := make([]kubeconfig.UserInput, 0, len(decrypted))
	for _, cred := range decrypted {
		name := cred.Username
		if name == "" {
			name = cred.ID
		}
		inputs = append(inputs, kubeconfig.UserInput{
			Name:       name,
			Token:      cred.Token,
			Kubeconfig: cred.Kubeconfig,
		})
	}
	return inputs
}

// printKubeconfig writes the document to stdout, syntax-highlighted
// when stdout is a color-capable terminal.
func printKubeconfig(config *kubeconfig.Config) error {
	encoded, err := kubeconfig.Encode(config)
	if err != nil {
		return cli.Internal("%v", err)
	}
	if term.IsTerminal(int(os.Stdout.Fd())) && termenv.EnvColorProfile() != termenv.Ascii {
		if err := quick.Highlight(os.Stdout, string(encoded), "yaml", "terminal256", "monokai"); err == nil {
			return nil
		}
		// Highlighting is cosmetic; fall through to plain output.
	}
	_, err = os.Stdout.Write(encoded)
	return err
}
