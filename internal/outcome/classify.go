package outcome

import (
	"bytes"
	"context"
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrNoReceipt is returned when waiting for inclusion ends without a receipt.
var ErrNoReceipt = errors.New("transaction was not confirmed: no receipt returned")

// SelectorSize is the length of a contract error selector.
const SelectorSize = 4

// tryLaterSelector and faucetEmptySelector are computed on first use and
// shared by every classification. They must never be handed out directly.
var (
	tryLaterSelector = sync.OnceValue(func() []byte {
		return selector("TryLater()")
	})

	faucetEmptySelector = sync.OnceValue(func() []byte {
		return selector("FaucetEmpty()")
	})
)

// TryLaterSelector returns a copy of the selector of the contract error
// `TryLater()`, raised when a key was funded too recently.
func TryLaterSelector() []byte {
	return bytes.Clone(tryLaterSelector())
}

// FaucetEmptySelector returns a copy of the selector of the contract error
// `FaucetEmpty()`, raised when the contract balance cannot cover a drip.
func FaucetEmptySelector() []byte {
	return bytes.Clone(faucetEmptySelector())
}

// selector returns the first four bytes of the keccak256 hash of signature.
func selector(signature string) []byte {
	return crypto.Keccak256([]byte(signature))[:SelectorSize]
}

// RevertError is implemented by errors that carry the raw revert payload of a
// contract call.
type RevertError interface {
	error
	RevertData() []byte
}

// Awaiter blocks until a transaction is included and returns its receipt.
type Awaiter interface {
	AwaitInclusion(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}

// Classify maps a failed broadcast onto an Outcome. A revert payload whose
// first four bytes match a known contract error maps to RateLimited or
// ResourceExhausted. Anything else, including payloads shorter than a
// selector, is a Failure carrying the error text.
//
// Parameters:
//   - err: the broadcast error. A nil error carries nothing to classify and
//     yields a Failure with an empty message.
//
// Returns:
//   - The Outcome matching err.
func Classify(err error) Outcome {
	if err == nil {
		return Failure("")
	}

	var revert RevertError
	if errors.As(err, &revert) {
		data := revert.RevertData()
		if len(data) >= SelectorSize {
			switch {
			case bytes.Equal(data[:SelectorSize], tryLaterSelector()):
				return RateLimited()
			case bytes.Equal(data[:SelectorSize], faucetEmptySelector()):
				return ResourceExhausted()
			}
		}
	}

	return Failure(err.Error())
}

// FromBroadcast resolves an accepted transaction. Without wait the outcome is
// Pending. With wait it blocks on awaiter; a receipt gives Success, and an
// await error is returned unchanged.
func FromBroadcast(ctx context.Context, hash common.Hash, wait bool, awaiter Awaiter) (Outcome, error) {
	if !wait {
		return Pending(hash), nil
	}

	receipt, err := awaiter.AwaitInclusion(ctx, hash)
	if err != nil {
		return Outcome{}, err
	}

	if receipt == nil {
		return Outcome{}, ErrNoReceipt
	}

	return Success(hash), nil
}
