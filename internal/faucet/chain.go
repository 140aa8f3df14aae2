package faucet

import (
	"context"
	"math/big"

	"github.com/gabapcia/faucet/internal/fees"
	"github.com/gabapcia/faucet/internal/outcome"

	"github.com/ethereum/go-ethereum/common"
)

// Call is the execution payload of a faucet transaction: a plain value
// transfer when Data is empty, a contract call otherwise.
type Call struct {
	To    common.Address
	Value *big.Int
	Data  []byte
}

// Chain is the network the faucet signs and broadcasts on.
type Chain interface {
	fees.Source
	outcome.Awaiter

	// Broadcast builds, signs and submits a dynamic-fee transaction for call.
	//
	// Broadcast assigns the sender nonce, so it must only run while the
	// transaction serializer is held. A call rejected by the contract is
	// returned as an error implementing outcome.RevertError.
	Broadcast(ctx context.Context, call Call, fee fees.Recommendation) (common.Hash, error)
}
