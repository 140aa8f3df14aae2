// Package fees recommends an EIP-1559 priority fee and fee cap from recent
// block history. The computation is pure integer arithmetic so every node of
// the service derives the same numbers from the same samples.
package fees

import (
	"context"
	"errors"
	"slices"

	"github.com/holiman/uint256"
)

const (
	// HistoryBlocks is the number of most recent blocks sampled for rewards.
	HistoryBlocks = 20

	// RewardPercentile is the percentile of each block's priority fees sampled.
	RewardPercentile = 40.0

	// spikeThreshold is the minimum percentage jump between two adjacent
	// sorted rewards for the lower cluster to be discarded.
	spikeThreshold = 200
)

// ErrDynamicFeesUnavailable is returned when the latest block carries no base
// fee, which means the chain does not run the EIP-1559 fee market.
var ErrDynamicFeesUnavailable = errors.New("fee mechanism not active: latest block has no base fee")

var (
	surgeTier1 = uint256.NewInt(40_000_000_000)
	surgeTier2 = uint256.NewInt(100_000_000_000)
	surgeTier3 = uint256.NewInt(200_000_000_000)

	hundred = uint256.NewInt(100)
	ten     = uint256.NewInt(10)
)

// FeeHistorySample is the chain data a single estimation consumes.
type FeeHistorySample struct {
	// BaseFee of the latest block. Nil when the chain does not expose one.
	BaseFee *uint256.Int

	// Rewards holds one observation per sampled block, oldest first, taken at
	// RewardPercentile.
	Rewards []*uint256.Int
}

// Recommendation is the fee pair to use for a dynamic-fee transaction.
type Recommendation struct {
	PriorityFee *uint256.Int
	FeeCap      *uint256.Int
}

// Source provides fresh fee history. Implementations hit the network on every
// call; nothing is cached between estimations.
type Source interface {
	FeeHistory(ctx context.Context) (FeeHistorySample, error)
}

// Estimator fetches history from a Source and turns it into a Recommendation.
// It holds no mutable state and is safe for concurrent use.
type Estimator struct {
	source Source
}

// NewEstimator returns an Estimator reading from source.
func NewEstimator(source Source) *Estimator {
	return &Estimator{source: source}
}

// Recommend fetches the current fee history and estimates fees from it.
// Source errors are returned unchanged.
func (e *Estimator) Recommend(ctx context.Context) (Recommendation, error) {
	sample, err := e.source.FeeHistory(ctx)
	if err != nil {
		return Recommendation{}, err
	}

	return Estimate(sample)
}

// Estimate derives the priority fee from the reward samples and a fee cap from
// the surged base fee. The cap is tip+surged when the tip exceeds the surged
// base fee, and the surged base fee otherwise.
func Estimate(sample FeeHistorySample) (Recommendation, error) {
	if sample.BaseFee == nil {
		return Recommendation{}, ErrDynamicFeesUnavailable
	}

	priorityFee := EstimatePriorityFee(sample.Rewards)
	surged := SurgeBaseFee(sample.BaseFee)

	feeCap := surged
	if priorityFee.Gt(surged) {
		feeCap = new(uint256.Int).Add(priorityFee, surged)
	}

	return Recommendation{
		PriorityFee: priorityFee,
		FeeCap:      feeCap,
	}, nil
}

// EstimatePriorityFee returns the median of the non-zero rewards. When the
// largest relative jump between adjacent sorted rewards is at least 200% and
// sits in the upper half, the rewards below the jump are treated as stale and
// only the tail from the jump onwards is considered.
//
// The median of an even number of values is the upper-middle element.
func EstimatePriorityFee(rewards []*uint256.Int) *uint256.Int {
	values := make([]*uint256.Int, 0, len(rewards))
	for _, r := range rewards {
		if r != nil && !r.IsZero() {
			values = append(values, r)
		}
	}

	switch len(values) {
	case 0:
		return new(uint256.Int)
	case 1:
		return new(uint256.Int).Set(values[0])
	}

	slices.SortFunc(values, func(a, b *uint256.Int) int { return a.Cmp(b) })

	var (
		maxChange      = new(uint256.Int)
		maxChangeIndex = 0
	)
	for i := 0; i < len(values)-1; i++ {
		change := percentageChange(values[i], values[i+1])
		if i == 0 || change.Gt(maxChange) {
			maxChange, maxChangeIndex = change, i
		}
	}

	if maxChange.Cmp(uint256.NewInt(spikeThreshold)) >= 0 && maxChangeIndex >= len(values)/2 {
		values = values[maxChangeIndex:]
	}

	return new(uint256.Int).Set(values[len(values)/2])
}

// percentageChange computes ((next-current)*100)/current for current > 0 and
// next >= current, with a 512-bit intermediate product.
func percentageChange(current, next *uint256.Int) *uint256.Int {
	delta := new(uint256.Int).Sub(next, current)
	change, _ := new(uint256.Int).MulDivOverflow(delta, hundred, current)
	return change
}

// SurgeBaseFee scales the base fee by a tiered multiplier so the fee cap
// survives a few blocks of base fee growth:
//
//	base <= 40 gwei   x2.0
//	base <= 100 gwei  x1.6
//	base <= 200 gwei  x1.4
//	otherwise         x1.2
func SurgeBaseFee(baseFee *uint256.Int) *uint256.Int {
	var numerator uint64
	switch {
	case baseFee.Cmp(surgeTier1) <= 0:
		numerator = 20
	case baseFee.Cmp(surgeTier2) <= 0:
		numerator = 16
	case baseFee.Cmp(surgeTier3) <= 0:
		numerator = 14
	default:
		numerator = 12
	}

	surged, _ := new(uint256.Int).MulDivOverflow(baseFee, uint256.NewInt(numerator), ten)
	return surged
}
