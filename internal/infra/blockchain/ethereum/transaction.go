package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"

	"github.com/gabapcia/faucet/internal/faucet"
	"github.com/gabapcia/faucet/internal/fees"
	"github.com/gabapcia/faucet/internal/outcome"
	"github.com/gabapcia/faucet/internal/pkg/logger"
	"github.com/gabapcia/faucet/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// RevertError is a call rejected by the EVM. It keeps the node's error and the
// raw revert payload.
type RevertError struct {
	rpcErr *jsonrpc.Error
	data   []byte
}

var _ outcome.RevertError = (*RevertError)(nil)

// Error returns the node's message, typically "execution reverted".
func (e *RevertError) Error() string {
	return e.rpcErr.Message
}

// Unwrap exposes the underlying *jsonrpc.Error.
func (e *RevertError) Unwrap() error {
	return e.rpcErr
}

// RevertData returns the ABI-encoded revert reason, selector first.
func (e *RevertError) RevertData() []byte {
	return e.data
}

// asRevertError converts a JSON-RPC error whose data member is a hex string
// into a RevertError. Any other error is returned unchanged.
func asRevertError(err error) error {
	var rpcErr *jsonrpc.Error
	if !errors.As(err, &rpcErr) || len(rpcErr.Data) == 0 {
		return err
	}

	var encoded string
	if json.Unmarshal(rpcErr.Data, &encoded) != nil {
		return err
	}

	data, decodeErr := hexutil.Decode(encoded)
	if decodeErr != nil {
		return err
	}

	return &RevertError{rpcErr: rpcErr, data: data}
}

// CallArgs is the call object sent to eth_estimateGas.
type CallArgs struct {
	From  common.Address `json:"from"`
	To    common.Address `json:"to"`
	Value *hexutil.Big   `json:"value,omitempty"`
	Data  hexutil.Bytes  `json:"data,omitempty"`
}

// estimateGas runs eth_estimateGas for call from the faucet account. A revert
// comes back as a *RevertError.
func (c *client) estimateGas(ctx context.Context, call faucet.Call) (uint64, error) {
	args := CallArgs{
		From: c.from,
		To:   call.To,
		Data: call.Data,
	}
	if call.Value != nil {
		args.Value = (*hexutil.Big)(call.Value)
	}

	data, err := c.conn.Fetch(ctx, "eth_estimateGas", args)
	if err != nil {
		return 0, asRevertError(err)
	}

	var gas hexutil.Uint64
	return uint64(gas), json.Unmarshal(data, &gas)
}

// getPendingNonce returns the account's transaction count including the
// node's pending pool.
func (c *client) getPendingNonce(ctx context.Context) (uint64, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionCount", c.from, "pending")
	if err != nil {
		return 0, err
	}

	var nonce hexutil.Uint64
	return uint64(nonce), json.Unmarshal(data, &nonce)
}

// reserveNonce returns the nonce for the next transaction, loading it from
// the node's pending count on first use or after a failed send.
func (c *client) reserveNonce(ctx context.Context) (uint64, error) {
	c.nonceMu.Lock()
	defer c.nonceMu.Unlock()

	if !c.nonceLoaded {
		nonce, err := c.getPendingNonce(ctx)
		if err != nil {
			return 0, err
		}

		c.nextNonce, c.nonceLoaded = nonce, true
	}

	return c.nextNonce, nil
}

// commitNonce advances the local nonce past used.
func (c *client) commitNonce(used uint64) {
	c.nonceMu.Lock()
	defer c.nonceMu.Unlock()

	c.nextNonce = used + 1
}

// resetNonce forces the next reserveNonce to ask the node again.
func (c *client) resetNonce() {
	c.nonceMu.Lock()
	defer c.nonceMu.Unlock()

	c.nonceLoaded = false
}

// sendRawTransaction submits the signed transaction in its EIP-2718 encoding.
func (c *client) sendRawTransaction(ctx context.Context, tx *types.Transaction) error {
	raw, err := tx.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = c.conn.Fetch(ctx, "eth_sendRawTransaction", hexutil.Encode(raw))
	return err
}

// Broadcast implements faucet.Chain. It must run inside the transaction
// serializer: the nonce is read before signing and committed only after the
// node accepted the transaction. A rejected send drops the local nonce so the
// next call resynchronises with the node.
func (c *client) Broadcast(ctx context.Context, call faucet.Call, fee fees.Recommendation) (common.Hash, error) {
	gas, err := c.estimateGas(ctx, call)
	if err != nil {
		return common.Hash{}, err
	}

	nonce, err := c.reserveNonce(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	value := call.Value
	if value == nil {
		value = new(big.Int)
	}

	to := call.To
	tx, err := types.SignNewTx(c.key, c.signer, &types.DynamicFeeTx{
		ChainID:   c.chainID,
		Nonce:     nonce,
		GasTipCap: fee.PriorityFee.ToBig(),
		GasFeeCap: fee.FeeCap.ToBig(),
		Gas:       gas,
		To:        &to,
		Value:     value,
		Data:      call.Data,
	})
	if err != nil {
		return common.Hash{}, err
	}

	if err := c.sendRawTransaction(ctx, tx); err != nil {
		c.resetNonce()
		return common.Hash{}, asRevertError(err)
	}

	c.commitNonce(nonce)

	logger.Debug(ctx, "transaction accepted by node",
		"tx.hash", tx.Hash().Hex(),
		"tx.nonce", nonce,
		"tx.gas", gas,
	)

	return tx.Hash(), nil
}
