// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/voltmarket/volt/cmd/volt/cli"
	"github.com/voltmarket/volt/lib/api"
	"github.com/voltmarket/volt/lib/config"
	"github.com/voltmarket/volt/lib/secret"
)

// loginParams holds the parameters for the login command.
type loginParams struct {
	APIURL    string `flag:"api-url"    desc:"marketplace API base URL (default: from config)"`
	TokenFile string `flag:"token-file" desc:"path to file containing API token, or - to prompt interactively (default: prompt)"`
}

// LoginCommand returns the "login" command for authenticating against the
// marketplace. The token is verified with a whoami call before the config
// file is written, so a typo'd token never ends up on disk.
func LoginCommand() *cli.Command {
	var params loginParams

	return &cli.Command{
		Name:    "login",
		Summary: "Authenticate against the marketplace",
		Description: `Save a marketplace API token locally.

After login, commands like "volt orders" and "volt clusters" use the saved
token transparently. The config file is stored at ~/.config/volt/config.jsonc
(or $VOLT_CONFIG if set) with mode 0600, since it contains the token.

The token can be provided via --token-file (a path to a file containing the
token) or prompted interactively if --token-file is "-" or omitted.`,
		Usage: "volt login [flags]",
		Examples: []cli.Example{
			{
				Description: "Log in interactively (prompts for token)",
				Command:     "volt login",
			},
			{
				Description: "Log in with token from file",
				Command:     "volt login --token-file /path/to/token",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			tokenBuffer, err := readLoginToken(params.TokenFile)
			if err != nil {
				return err
			}
			defer tokenBuffer.Close()

			path, err := config.Path()
			if err != nil {
				return cli.Internal("resolve config path: %w", err)
			}
			loaded, err := config.Load(path)
			if err != nil {
				return cli.Internal("load config: %w", err)
			}
			if params.APIURL != "" {
				loaded.APIURL = params.APIURL
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			client, err := api.NewClient(api.ClientConfig{
				BaseURL:    loaded.APIURL,
				Token:      tokenBuffer,
				HTTPClient: &http.Client{Timeout: 30 * time.Second},
				Logger:     logger,
			})
			if err != nil {
				return cli.Internal("create api client: %w", err)
			}

			// Verify the token works before saving it.
			account, err := client.Whoami(ctx)
			if err != nil {
				return cli.WrapAPIError(err)
			}

			loaded.Token = tokenBuffer.String()
			if err := config.Save(path, loaded); err != nil {
				return cli.Internal("save config: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Logged in as %s\n", account.Email)
			fmt.Fprintf(os.Stderr, "Token saved to %s\n", path)
			return nil
		},
	}
}

// readLoginToken reads an API token for the login command. If tokenFile is
// empty or "-", prompts interactively on the terminal with echo disabled.
// Otherwise reads from the file path.
func readLoginToken(tokenFile string) (*secret.Buffer, error) {
	if tokenFile != "" && tokenFile != "-" {
		buffer, err := secret.ReadFromPath(tokenFile)
		if err != nil {
			return nil, cli.Internal("reading %s: %w", tokenFile, err)
		}
		return buffer, nil
	}

	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return nil, cli.Validation("no terminal available for interactive token prompt (use --token-file)")
	}

	fmt.Fprint(os.Stderr, "API token: ")
	tokenBytes, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, cli.Internal("reading token: %w", err)
	}
	if len(tokenBytes) == 0 {
		return nil, cli.Validation("token is empty")
	}

	buffer, err := secret.NewFromBytes(tokenBytes)
	if err != nil {
		secret.Zero(tokenBytes)
		return nil, err
	}
	return buffer, nil
}
