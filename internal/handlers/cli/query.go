package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/faucet/internal/faucet"

	"github.com/urfave/cli/v3"
)

// feesCommand prints the fee recommendation, in wei, that the next faucet
// transaction would carry.
func feesCommand(svc faucet.Service) *cli.Command {
	return &cli.Command{
		Name:        "fees",
		Description: "Print the EIP-1559 fee recommendation for the next transaction.",
		Usage:       "Values are in wei.",
		Action: func(ctx context.Context, c *cli.Command) error {
			rec, err := svc.Fees(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "max_priority_fee_per_gas\t%s\nmax_fee_per_gas\t%s\n", rec.PriorityFee.Dec(), rec.FeeCap.Dec())
			return nil
		},
	}
}

// historyCommand prints the last drip recorded for a recipient.
//
// Usage example:
//
//	faucet history --address 0xABC...
func historyCommand(svc faucet.Service) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "Show the last faucet transaction recorded for a recipient.",
		Usage:       "Requires the Redis ledger to be configured.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Recipient address",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			address := c.String("address")

			record, err := svc.LastDrip(ctx, address)
			if errors.Is(err, faucet.ErrNoDripRecorded) {
				fmt.Fprintf(c.Root().Writer, "%s\tno drip recorded\n", address)
				return nil
			}

			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "%s\t%s\t%s\t%s\t%s\n",
				record.Recipient.Hex(),
				record.Action,
				record.Outcome,
				record.TxHash.Hex(),
				record.At.Format(time.RFC3339),
			)
			return nil
		},
	}
}
