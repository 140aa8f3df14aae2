package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/faucet/internal/faucet"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
)

// faucetKeyPrefix is the Redis key namespace of every faucet entry.
const faucetKeyPrefix = "faucet"

// Addresses are lower-cased so checksummed and plain spellings share a key.
func cooldownKey(recipient common.Address) string {
	return fmt.Sprintf("%s:cooldown:%s", faucetKeyPrefix, strings.ToLower(recipient.Hex()))
}

func lastDripKey(recipient common.Address) string {
	return fmt.Sprintf("%s:drip:last:%s", faucetKeyPrefix, strings.ToLower(recipient.Hex()))
}

// ClaimRecipient reserves the recipient for ttl with SET NX.
//
// Returns:
//   - nil if the claim is successful.
//   - faucet.ErrRecipientCoolingDown if an earlier claim has not expired.
//   - any other error if the Redis operation fails.
func (s *client) ClaimRecipient(ctx context.Context, recipient common.Address, ttl time.Duration) error {
	ok, err := s.conn.SetNX(ctx, cooldownKey(recipient), time.Now().UTC().Format(time.RFC3339Nano), ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return faucet.ErrRecipientCoolingDown
	}

	return nil
}

// ReleaseRecipient deletes the cooldown entry of recipient, if any.
func (s *client) ReleaseRecipient(ctx context.Context, recipient common.Address) error {
	return s.conn.Del(ctx, cooldownKey(recipient)).Err()
}

// RecordDrip stores record as JSON with no expiration, replacing the
// previous entry of the same recipient.
func (s *client) RecordDrip(ctx context.Context, record faucet.DripRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return s.conn.Set(ctx, lastDripKey(record.Recipient), data, 0).Err()
}

// LastDrip loads the latest record of recipient or returns faucet.ErrNoDripRecorded.
func (s *client) LastDrip(ctx context.Context, recipient common.Address) (faucet.DripRecord, error) {
	data, err := s.conn.Get(ctx, lastDripKey(recipient)).Bytes()
	if errors.Is(err, redis.Nil) {
		return faucet.DripRecord{}, faucet.ErrNoDripRecorded
	}

	if err != nil {
		return faucet.DripRecord{}, err
	}

	var record faucet.DripRecord
	return record, json.Unmarshal(data, &record)
}

// Ensure the client satisfies the DripLedger interface at compile time.
var _ faucet.DripLedger = new(client)
