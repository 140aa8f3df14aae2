// Package ethereum implements faucet.Chain for EVM nodes speaking the
// standard Ethereum JSON-RPC API.
package ethereum

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/gabapcia/faucet/internal/faucet"
	"github.com/gabapcia/faucet/internal/pkg/resilience/retry"
	"github.com/gabapcia/faucet/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// client signs with a single key and tracks that key's nonce locally.
type client struct {
	conn    jsonrpc.Client
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
	signer  types.Signer

	nonceMu     sync.Mutex
	nextNonce   uint64
	nonceLoaded bool

	receiptTimeout time.Duration
	receiptRetry   retry.Retry
}

// Ensure compile-time compliance with the faucet.Chain interface.
var _ faucet.Chain = (*client)(nil)

// Address returns the account the client signs for.
func (c *client) Address() common.Address {
	return c.from
}

// ChainID returns the chain id fetched when the client was created.
func (c *client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// getChainID asks the node for its chain id (eth_chainId).
func (c *client) getChainID(ctx context.Context) (*big.Int, error) {
	data, err := c.conn.Fetch(ctx, "eth_chainId")
	if err != nil {
		return nil, err
	}

	var chainID hexutil.Big
	if err := json.Unmarshal(data, &chainID); err != nil {
		return nil, err
	}

	return chainID.ToInt(), nil
}

// config collects the settings applied by Option values in NewClient.
type config struct {
	receiptPollInterval time.Duration
	receiptTimeout      time.Duration
	startupRetry        retry.Retry
}

// Option customizes the client built by NewClient.
//
// Example:
//
//	c, err := ethereum.NewClient(ctx, conn, key,
//	    ethereum.WithReceiptPollInterval(time.Second),
//	    ethereum.WithReceiptTimeout(time.Minute),
//	)
type Option func(*config)

// NewClient returns a client signing with key. The chain id is fetched once,
// retried with the startup retry policy, and used for every signature
// afterwards.
//
// Defaults: receipts polled every 2s for at most 2m, startup lookup retried
// with retry.New defaults.
//
// Parameters:
//   - ctx: bounds the chain id lookup.
//   - conn: JSON-RPC connection to the node.
//   - key: the faucet account's private key. Required.
//   - opts: optional settings.
//
// Returns:
//   - The client, ready to broadcast.
//   - An error if key is nil or the chain id could not be fetched.
func NewClient(ctx context.Context, conn jsonrpc.Client, key *ecdsa.PrivateKey, opts ...Option) (*client, error) {
	if key == nil {
		return nil, errors.New("signing key is required")
	}

	cfg := config{
		receiptPollInterval: 2 * time.Second,
		receiptTimeout:      2 * time.Minute,
		startupRetry:        retry.New(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &client{
		conn:           conn,
		key:            key,
		from:           crypto.PubkeyToAddress(key.PublicKey),
		receiptTimeout: cfg.receiptTimeout,
		receiptRetry:   newReceiptRetry(cfg.receiptPollInterval),
	}

	err := cfg.startupRetry.Execute(ctx, func() error {
		chainID, err := c.getChainID(ctx)
		if err != nil {
			return err
		}

		c.chainID = chainID
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.signer = types.LatestSignerForChainID(c.chainID)
	return c, nil
}

// newReceiptRetry polls at a fixed interval for as long as the receipt is
// missing. The wait is bounded by the caller's context.
func newReceiptRetry(interval time.Duration) retry.Retry {
	return retry.New(
		retry.WithAttempts(0),
		retry.WithDelay(interval),
		retry.WithFixedDelay(),
		retry.WithRetryIf(func(err error) bool { return errors.Is(err, ErrReceiptNotFound) }),
	)
}

// WithReceiptPollInterval sets how often AwaitInclusion asks for the receipt.
func WithReceiptPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.receiptPollInterval = d
	}
}

// WithReceiptTimeout bounds how long AwaitInclusion waits for a receipt.
func WithReceiptTimeout(d time.Duration) Option {
	return func(c *config) {
		c.receiptTimeout = d
	}
}

// WithStartupRetry sets the retry policy for the chain id lookup in NewClient.
func WithStartupRetry(r retry.Retry) Option {
	return func(c *config) {
		c.startupRetry = r
	}
}
