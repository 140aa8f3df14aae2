// Package config loads the faucet settings from FAUCET_* environment variables.
package config

import (
	"fmt"
	"math/big"
	"time"

	"github.com/gabapcia/faucet/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended, upper-cased, to every variable name.
const envPrefix = "faucet"

// Wei is a decimal amount of wei read from the environment.
type Wei struct {
	*big.Int
}

// Decode implements envconfig.Decoder.
func (w *Wei) Decode(value string) error {
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok || amount.Sign() < 0 {
		return fmt.Errorf("invalid wei amount %q", value)
	}

	w.Int = amount
	return nil
}

// Config holds every setting of the faucet process, read from FAUCET_*
// environment variables.
//
// Groups:
//   - Signing and chain: PrivateKey (required), RPCURL, ContractAddress
//     (drips are disabled when empty), RegisterAmount in wei.
//   - Observability: LogLevel, OTELEnabled, ServiceName.
//   - Ledger: the Redis connection and DripCooldown. The ledger is only used
//     when RedisAddr is set.
//   - Timeouts: receipt polling and the JSON-RPC transport.
type Config struct {
	PrivateKey      string `envconfig:"PRIVATE_KEY" required:"true" validate:"required,privkey"`
	RPCURL          string `envconfig:"RPC_URL" default:"http://localhost:8545" validate:"required,url"`
	ContractAddress string `envconfig:"CONTRACT_ADDRESS" validate:"omitempty,eth_addr"`
	RegisterAmount  Wei    `envconfig:"REGISTER_AMOUNT" default:"1"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	OTELEnabled bool   `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"faucet" validate:"required"`

	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisUsername string        `envconfig:"REDIS_USERNAME"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	DripCooldown  time.Duration `envconfig:"DRIP_COOLDOWN" default:"0s" validate:"gte=0"`

	ReceiptPollInterval time.Duration `envconfig:"RECEIPT_POLL_INTERVAL" default:"2s" validate:"gt=0"`
	ReceiptTimeout      time.Duration `envconfig:"RECEIPT_TIMEOUT" default:"2m" validate:"gt=0"`
	RPCTimeout          time.Duration `envconfig:"RPC_TIMEOUT" default:"10s" validate:"gt=0"`
	RPCRetryMax         int           `envconfig:"RPC_RETRY_MAX" default:"2" validate:"gte=0"`
}

// Load reads and validates the configuration.
//
// Returns:
//   - The loaded Config.
//   - An envconfig error for missing or malformed variables, or an error
//     matching validator.ErrValidationFailed. Private key values are never
//     included in the error text.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// CooldownEnabled reports whether recipients are rate limited through Redis.
func (c Config) CooldownEnabled() bool {
	return c.RedisAddr != "" && c.DripCooldown > 0
}
