package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	// ErrReceiptNotFound is returned while a transaction is not included yet.
	ErrReceiptNotFound = errors.New("transaction receipt not found")

	// ErrReceiptTimeout is returned when no receipt arrived within the wait limit.
	ErrReceiptTimeout = errors.New("timed out waiting for transaction receipt")

	// ErrTransactionReverted is returned for a receipt whose execution failed.
	ErrTransactionReverted = errors.New("transaction reverted on chain")
)

// ReceiptResponse holds the receipt fields of eth_getTransactionReceipt the
// client reads.
type ReceiptResponse struct {
	TransactionHash   common.Hash    `json:"transactionHash"`
	BlockHash         common.Hash    `json:"blockHash"`
	BlockNumber       *hexutil.Big   `json:"blockNumber"`
	GasUsed           hexutil.Uint64 `json:"gasUsed"`
	EffectiveGasPrice *hexutil.Big   `json:"effectiveGasPrice"`
	Status            hexutil.Uint64 `json:"status"`
}

// toReceipt converts the response into a go-ethereum receipt.
func (r ReceiptResponse) toReceipt() *types.Receipt {
	return &types.Receipt{
		TxHash:            r.TransactionHash,
		BlockHash:         r.BlockHash,
		BlockNumber:       r.BlockNumber.ToInt(),
		GasUsed:           uint64(r.GasUsed),
		EffectiveGasPrice: r.EffectiveGasPrice.ToInt(),
		Status:            uint64(r.Status),
	}
}

// getTransactionReceipt returns ErrReceiptNotFound while the node answers null.
func (c *client) getTransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionReceipt", hash)
	if err != nil {
		return nil, err
	}

	var receipt *ReceiptResponse
	if err := json.Unmarshal(data, &receipt); err != nil {
		return nil, err
	}

	if receipt == nil {
		return nil, ErrReceiptNotFound
	}

	return receipt.toReceipt(), nil
}

// AwaitInclusion implements outcome.Awaiter. It polls for the receipt until
// the transaction is included, the receipt timeout elapses or ctx ends. Only a
// missing receipt is retried; any RPC error stops the wait.
func (c *client) AwaitInclusion(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, c.receiptTimeout)
	defer cancel()

	var receipt *types.Receipt
	err := c.receiptRetry.Execute(waitCtx, func() error {
		r, err := c.getTransactionReceipt(waitCtx, hash)
		if err != nil {
			return err
		}

		receipt = r
		return nil
	})
	if err != nil {
		if ctx.Err() == nil && errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrReceiptTimeout, hash.Hex())
		}

		return nil, err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: %s", ErrTransactionReverted, hash.Hex())
	}

	return receipt, nil
}
