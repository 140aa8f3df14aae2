package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/faucet/internal/fees"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// ErrBlockNotFound is returned when the node has no latest block to report.
var ErrBlockNotFound = errors.New("latest block not found")

type (
	// BlockHeaderResponse holds the header fields of eth_getBlockByNumber the
	// client reads.
	BlockHeaderResponse struct {
		Number        *hexutil.Big `json:"number"`
		BaseFeePerGas *hexutil.Big `json:"baseFeePerGas"`
	}

	// FeeHistoryResponse is the result of eth_feeHistory.
	FeeHistoryResponse struct {
		OldestBlock   *hexutil.Big     `json:"oldestBlock"`
		Reward        [][]*hexutil.Big `json:"reward"`
		BaseFeePerGas []*hexutil.Big   `json:"baseFeePerGas"`
		GasUsedRatio  []float64        `json:"gasUsedRatio"`
	}
)

// getLatestBlockHeader fetches the latest block without its transactions.
func (c *client) getLatestBlockHeader(ctx context.Context) (BlockHeaderResponse, error) {
	data, err := c.conn.Fetch(ctx, "eth_getBlockByNumber", "latest", false)
	if err != nil {
		return BlockHeaderResponse{}, err
	}

	var header *BlockHeaderResponse
	if err := json.Unmarshal(data, &header); err != nil {
		return BlockHeaderResponse{}, err
	}

	if header == nil {
		return BlockHeaderResponse{}, ErrBlockNotFound
	}

	return *header, nil
}

// getFeeHistory samples the last fees.HistoryBlocks blocks at
// fees.RewardPercentile.
func (c *client) getFeeHistory(ctx context.Context) (FeeHistoryResponse, error) {
	data, err := c.conn.Fetch(ctx, "eth_feeHistory",
		hexutil.Uint64(fees.HistoryBlocks),
		"latest",
		[]float64{fees.RewardPercentile},
	)
	if err != nil {
		return FeeHistoryResponse{}, err
	}

	var history FeeHistoryResponse
	return history, json.Unmarshal(data, &history)
}

// FeeHistory implements fees.Source. The latest base fee comes from the latest
// block header; the rewards are one sample per block at fees.RewardPercentile.
// A chain without a base fee fails with fees.ErrDynamicFeesUnavailable
// without querying the history.
func (c *client) FeeHistory(ctx context.Context) (fees.FeeHistorySample, error) {
	header, err := c.getLatestBlockHeader(ctx)
	if err != nil {
		return fees.FeeHistorySample{}, err
	}

	if header.BaseFeePerGas == nil {
		return fees.FeeHistorySample{}, fees.ErrDynamicFeesUnavailable
	}

	baseFee, overflow := uint256.FromBig(header.BaseFeePerGas.ToInt())
	if overflow {
		return fees.FeeHistorySample{}, fmt.Errorf("base fee %s overflows 256 bits", header.BaseFeePerGas)
	}

	history, err := c.getFeeHistory(ctx)
	if err != nil {
		return fees.FeeHistorySample{}, err
	}

	rewards := make([]*uint256.Int, 0, len(history.Reward))
	for _, blockRewards := range history.Reward {
		if len(blockRewards) == 0 || blockRewards[0] == nil {
			continue
		}

		reward, overflow := uint256.FromBig(blockRewards[0].ToInt())
		if overflow {
			return fees.FeeHistorySample{}, fmt.Errorf("reward %s overflows 256 bits", blockRewards[0])
		}

		rewards = append(rewards, reward)
	}

	return fees.FeeHistorySample{
		BaseFee: baseFee,
		Rewards: rewards,
	}, nil
}
