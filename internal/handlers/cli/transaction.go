package cli

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/gabapcia/faucet/internal/faucet"
	"github.com/gabapcia/faucet/internal/outcome"
	"github.com/gabapcia/faucet/internal/pkg/types"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentDrips bounds the drip requests in flight for one invocation.
// They still reach the chain one at a time.
const maxConcurrentDrips = 8

// ErrNotServed is returned when at least one request ended without its
// transaction being accepted by the node.
var ErrNotServed = errors.New("faucet request not served")

func noWaitFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "no-wait",
		Usage: "Return as soon as the transaction is broadcast instead of waiting for inclusion",
	}
}

// dripCommand returns a CLI command that funds recipients through the
// faucet contract.
//
// Usage example:
//
//	faucet drip --address 0xABC... --address 0xDEF... --key github:alice
func dripCommand(svc faucet.Service) *cli.Command {
	return &cli.Command{
		Name:        "drip",
		Description: "Fund one or more recipients through the faucet contract.",
		Usage:       "Calls drip for every address. Keys default to the recipient address.",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "address",
				Usage:    "Recipient address, repeat for several recipients",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "key",
				Usage: "Identifier the contract rate limits on, repeatable",
			},
			noWaitFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				addresses = uniqueAddresses(c.StringSlice("address"))
				keys      = c.StringSlice("key")
				noWait    = c.Bool("no-wait")
			)
			if len(keys) == 0 {
				keys = nil
			}

			results := make([]outcome.Outcome, len(addresses))
			errs := make([]error, len(addresses))

			var g errgroup.Group
			g.SetLimit(maxConcurrentDrips)
			for i, address := range addresses {
				g.Go(func() error {
					results[i], errs[i] = svc.Drip(ctx, faucet.DripRequest{
						Recipient: address,
						Keys:      keys,
						NoWait:    noWait,
					})
					return nil
				})
			}
			_ = g.Wait()

			served := true
			for i, address := range addresses {
				if errs[i] != nil {
					fmt.Fprintf(c.Root().Writer, "%s\terror: %v\n", address, errs[i])
					continue
				}

				fmt.Fprintf(c.Root().Writer, "%s\t%s\n", address, results[i])
				served = served && accepted(results[i])
			}

			if err := errors.Join(errs...); err != nil {
				return err
			}

			if !served {
				return ErrNotServed
			}

			return nil
		},
	}
}

// registerCommand returns a CLI command that transfers value from the faucet
// account to a new recipient.
//
// Usage example:
//
//	faucet register --address 0xABC... --value 1000000000000000
func registerCommand(svc faucet.Service) *cli.Command {
	return &cli.Command{
		Name:        "register",
		Description: "Send a plain value transfer from the faucet account to a recipient.",
		Usage:       "Creates the recipient account on chain. Value defaults to the configured register amount.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Recipient address",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "value",
				Usage: "Amount to send, in wei",
			},
			noWaitFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			req := faucet.TransactionRequest{
				Recipient: c.String("address"),
				NoWait:    c.Bool("no-wait"),
			}

			if raw := c.String("value"); raw != "" {
				value, ok := new(big.Int).SetString(raw, 10)
				if !ok || value.Sign() < 0 {
					return fmt.Errorf("invalid value %q: expected a non-negative amount of wei", raw)
				}
				req.Value = value
			}

			res, err := svc.Register(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "%s\t%s\n", req.Recipient, res)
			if !accepted(res) {
				return ErrNotServed
			}

			return nil
		},
	}
}

// uniqueAddresses drops repeated recipients, ignoring hex case, and keeps the
// first spelling of each.
func uniqueAddresses(addresses []string) []string {
	seen := types.NewSet[string]()

	unique := make([]string, 0, len(addresses))
	for _, address := range addresses {
		if seen.AddNew(strings.ToLower(address)) {
			unique = append(unique, address)
		}
	}

	return unique
}

func accepted(res outcome.Outcome) bool {
	return res.Kind() == outcome.KindSuccess || res.Kind() == outcome.KindPending
}
