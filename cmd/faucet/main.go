package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gabapcia/faucet/internal/config"
	"github.com/gabapcia/faucet/internal/faucet"
	"github.com/gabapcia/faucet/internal/handlers/cli"
	"github.com/gabapcia/faucet/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/faucet/internal/infra/storage/redis"
	"github.com/gabapcia/faucet/internal/pkg/logger"
	"github.com/gabapcia/faucet/internal/pkg/telemetry"
	"github.com/gabapcia/faucet/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := run(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "faucet:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.OTELEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return err
		}

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "failed to flush telemetry", "error", err)
			}
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Sync()

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return err
	}

	conn := jsonrpc.NewClient(cfg.RPCURL,
		jsonrpc.WithTimeout(cfg.RPCTimeout),
		jsonrpc.WithRetryMax(cfg.RPCRetryMax),
	)

	chain, err := ethereum.NewClient(ctx, conn, key,
		ethereum.WithReceiptPollInterval(cfg.ReceiptPollInterval),
		ethereum.WithReceiptTimeout(cfg.ReceiptTimeout),
	)
	if err != nil {
		return err
	}

	logger.Info(ctx, "faucet account loaded", "address", chain.Address().Hex(), "chain.id", chain.ChainID().String())

	opts := []faucet.Option{
		faucet.WithRegisterAmount(cfg.RegisterAmount.Int),
	}

	if cfg.ContractAddress != "" {
		opts = append(opts, faucet.WithContract(common.HexToAddress(cfg.ContractAddress)))
	}

	if cfg.RedisAddr != "" {
		ledger, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer ledger.Close()

		opts = append(opts, faucet.WithLedger(ledger))
		if cfg.CooldownEnabled() {
			opts = append(opts, faucet.WithCooldown(cfg.DripCooldown))
		}
	}

	return cli.Run(ctx, faucet.New(chain, opts...))
}
