package faucet

import (
	"math/big"
	"strings"
	"sync"

	"github.com/gabapcia/faucet/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// dripABI describes the single faucet contract function the service calls.
const dripABI = `[{"name":"drip","type":"function","stateMutability":"nonpayable","inputs":[{"name":"recipient","type":"address","internalType":"address payable"},{"name":"keys","type":"string[]","internalType":"string[]"}],"outputs":[]}]`

// parsedDripABI parses dripABI once, on first use.
var parsedDripABI = sync.OnceValues(func() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(dripABI))
})

// DripRequest asks the faucet contract to fund Recipient.
//
// Fields:
//   - Recipient: hex address to fund. Validated as an Ethereum address.
//   - Keys: identifiers the contract rate limits on. When empty, the
//     recipient address is used as the only key.
//   - NoWait: return Pending as soon as the node accepted the transaction.
//     The zero value waits for inclusion.
type DripRequest struct {
	Recipient string `validate:"required,eth_addr"`
	Keys      []string
	NoWait    bool
}

// TransactionRequest sends Value straight from the faucet account to
// Recipient.
//
// Fields:
//   - Recipient: hex address to fund. Validated as an Ethereum address.
//   - Value: amount in wei. Nil falls back to the configured register amount.
//   - NoWait: return Pending as soon as the node accepted the transaction.
//     The zero value waits for inclusion.
type TransactionRequest struct {
	Recipient string `validate:"required,eth_addr"`
	Value     *big.Int
	NoWait    bool
}

// recipient validates the request and returns the parsed recipient address.
func (r DripRequest) recipient() (common.Address, error) {
	if err := validator.Validate(r); err != nil {
		return common.Address{}, err
	}

	return common.HexToAddress(r.Recipient), nil
}

// keys returns the rate limit keys sent to the contract, defaulting to the
// recipient address.
func (r DripRequest) keys() []string {
	if len(r.Keys) == 0 {
		return []string{r.Recipient}
	}

	return r.Keys
}

// recipient validates the request and returns the parsed recipient address.
func (r TransactionRequest) recipient() (common.Address, error) {
	if err := validator.Validate(r); err != nil {
		return common.Address{}, err
	}

	return common.HexToAddress(r.Recipient), nil
}

// encodeDrip packs the calldata of drip(recipient, keys).
func encodeDrip(recipient common.Address, keys []string) ([]byte, error) {
	parsed, err := parsedDripABI()
	if err != nil {
		return nil, err
	}

	return parsed.Pack("drip", recipient, keys)
}
