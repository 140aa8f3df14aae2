package faucet

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrRecipientCoolingDown is returned by ClaimRecipient when the recipient
	// was already served within the cooldown window.
	ErrRecipientCoolingDown = errors.New("recipient is cooling down")

	// ErrNoDripRecorded is returned by LastDrip when the recipient was never
	// served.
	ErrNoDripRecorded = errors.New("no drip recorded for recipient")
)

// Actions recorded in DripRecord.Action.
const (
	// ActionDrip is a call to the faucet contract.
	ActionDrip = "drip"

	// ActionRegister is a plain value transfer from the faucet account.
	ActionRegister = "register"
)

// DripRecord is the ledger entry written after a transaction is accepted.
//
// Outcome holds the outcome.Kind name ("success", "pending"). At is UTC.
type DripRecord struct {
	Action    string         `json:"action"`
	Recipient common.Address `json:"recipient"`
	TxHash    common.Hash    `json:"txHash"`
	Outcome   string         `json:"outcome"`
	At        time.Time      `json:"at"`
}

// DripLedger keeps track of which recipients were served and when.
//
// It is typically backed by shared storage (e.g., Redis) so that several
// faucet instances agree on the cooldown of a recipient.
type DripLedger interface {
	// ClaimRecipient reserves the recipient for ttl. It returns
	// ErrRecipientCoolingDown if a previous claim has not expired yet.
	ClaimRecipient(ctx context.Context, recipient common.Address, ttl time.Duration) error

	// ReleaseRecipient drops an active claim so the recipient can ask again
	// right away. Releasing an unclaimed recipient is not an error.
	ReleaseRecipient(ctx context.Context, recipient common.Address) error

	// RecordDrip stores record as the latest entry for its recipient.
	RecordDrip(ctx context.Context, record DripRecord) error

	// LastDrip returns the latest entry for recipient, or ErrNoDripRecorded.
	LastDrip(ctx context.Context, recipient common.Address) (DripRecord, error)
}

// nopLedger never rate limits and never remembers anything.
type nopLedger struct{}

// Ensure compile-time compliance with the DripLedger interface.
var _ DripLedger = (*nopLedger)(nil)

func (nopLedger) ClaimRecipient(context.Context, common.Address, time.Duration) error {
	return nil
}

func (nopLedger) ReleaseRecipient(context.Context, common.Address) error {
	return nil
}

func (nopLedger) RecordDrip(context.Context, DripRecord) error {
	return nil
}

func (nopLedger) LastDrip(context.Context, common.Address) (DripRecord, error) {
	return DripRecord{}, ErrNoDripRecorded
}
