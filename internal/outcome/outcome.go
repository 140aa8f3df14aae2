// Package outcome maps the result of a faucet transaction onto the closed set
// of outcomes reported to callers.
package outcome

import (
	"github.com/ethereum/go-ethereum/common"
)

// Kind identifies an outcome variant.
type Kind int

// The zero Kind is reserved for the zero Outcome and prints as "unknown".
const (
	// KindSuccess: the transaction was included in a block.
	KindSuccess Kind = iota + 1

	// KindPending: the node accepted the transaction and inclusion was not awaited.
	KindPending

	// KindRateLimited: the contract refused the drip with TryLater().
	KindRateLimited

	// KindResourceExhausted: the contract refused the drip with FaucetEmpty().
	KindResourceExhausted

	// KindFailure: any other refusal or rejection, described by Outcome.Message.
	KindFailure
)

// String returns the snake_case name used in logs, metrics and the ledger.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindPending:
		return "pending"
	case KindRateLimited:
		return "rate_limited"
	case KindResourceExhausted:
		return "resource_exhausted"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Outcome is the immutable result of a faucet request. Only Success and
// Pending carry a transaction hash, and only Failure carries a message.
type Outcome struct {
	kind    Kind
	hash    common.Hash
	message string
}

// Success reports a transaction that was included in a block.
func Success(hash common.Hash) Outcome {
	return Outcome{kind: KindSuccess, hash: hash}
}

// Pending reports a transaction accepted by the node but not awaited.
func Pending(hash common.Hash) Outcome {
	return Outcome{kind: KindPending, hash: hash}
}

// RateLimited reports that the recipient must wait before asking again.
func RateLimited() Outcome {
	return Outcome{kind: KindRateLimited}
}

// ResourceExhausted reports that the faucet has nothing left to give.
func ResourceExhausted() Outcome {
	return Outcome{kind: KindResourceExhausted}
}

// Failure reports any other error with a human-readable message.
func Failure(message string) Outcome {
	return Outcome{kind: KindFailure, message: message}
}

// Kind returns the outcome variant.
func (o Outcome) Kind() Kind {
	return o.kind
}

// Hash returns the transaction hash and whether the outcome has one.
func (o Outcome) Hash() (common.Hash, bool) {
	switch o.kind {
	case KindSuccess, KindPending:
		return o.hash, true
	default:
		return common.Hash{}, false
	}
}

// Message returns the failure description. It is empty for every variant
// other than Failure.
func (o Outcome) Message() string {
	return o.message
}

// String renders the outcome for command output, for example
// "success 0x88df..." or "failure: insufficient funds".
func (o Outcome) String() string {
	switch o.kind {
	case KindSuccess, KindPending:
		return o.kind.String() + " " + o.hash.Hex()
	case KindFailure:
		return o.kind.String() + ": " + o.message
	default:
		return o.kind.String()
	}
}
