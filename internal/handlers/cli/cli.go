// Package cli exposes the faucet service as a command-line application.
package cli

import (
	"context"
	"os"

	"github.com/gabapcia/faucet/internal/faucet"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the faucet CLI application.
//
// It registers all available commands:
//
//   - `drip`: Funds one or more recipients through the faucet contract.
//   - `register`: Sends a plain value transfer to create an account.
//   - `fees`: Prints the fee recommendation for the next transaction.
//   - `history`: Prints the last recorded drip of a recipient.
func Run(ctx context.Context, svc faucet.Service) error {
	return newApp(svc).Run(ctx, os.Args)
}

func newApp(svc faucet.Service) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "faucet",
		Description:           "Command-line interface for funding accounts from the faucet.",
		Usage:                 "faucet [command] [flags]",
		Commands: []*cli.Command{
			dripCommand(svc),
			registerCommand(svc),
			feesCommand(svc),
			historyCommand(svc),
		},
	}
}
