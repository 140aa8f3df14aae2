// Package faucet funds fresh accounts, either through the faucet contract's
// drip function or with a plain value transfer from the faucet account.
//
// Every request follows the same path: fees are estimated concurrently, the
// transaction is built and broadcast while the process-wide serializer is
// held, and the node's answer is mapped onto an outcome.Outcome.
package faucet

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/gabapcia/faucet/internal/fees"
	"github.com/gabapcia/faucet/internal/outcome"
	"github.com/gabapcia/faucet/internal/pkg/logger"
	"github.com/gabapcia/faucet/internal/pkg/validator"
	"github.com/gabapcia/faucet/internal/serializer"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/faucet/internal/faucet"

// releaseTimeout bounds the ledger call that frees a cooldown claim.
const releaseTimeout = 5 * time.Second

// ErrContractNotConfigured is returned by Drip when no faucet contract address was set.
var ErrContractNotConfigured = errors.New("faucet contract address not configured")

// Service defines the operations the faucet offers to its callers.
//
// Implementations serialize every broadcast behind a single signing key, so
// concurrent requests never race for a nonce. Refusals by the contract are
// business outcomes and are reported through outcome.Outcome, not errors.
type Service interface {
	// Drip calls the faucet contract to fund the recipient.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout, including the inclusion wait.
	//   - req: the recipient, the rate limit keys and whether to skip waiting.
	//
	// Returns:
	//   - The outcome: Success or Pending with the transaction hash, or
	//     RateLimited, ResourceExhausted or Failure when the contract or the
	//     node refused the transaction.
	//   - An error if the request could not be evaluated at all: invalid input,
	//     missing contract, fee data unavailable, waiting for inclusion failed,
	//     or the serializer is poisoned.
	Drip(ctx context.Context, req DripRequest) (outcome.Outcome, error)

	// Register transfers value from the faucet account to the recipient,
	// which is enough for the chain to create the account.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout, including the inclusion wait.
	//   - req: the recipient, an optional amount and whether to skip waiting.
	//
	// Returns:
	//   - The outcome, as for Drip.
	//   - An error if the request could not be evaluated, as for Drip.
	Register(ctx context.Context, req TransactionRequest) (outcome.Outcome, error)

	// Fees returns the fee recommendation the next transaction would use.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout of the fee history lookup.
	//
	// Returns:
	//   - The priority fee and fee cap, in wei.
	//   - fees.ErrDynamicFeesUnavailable if the chain has no base fee, or the
	//     provider error.
	Fees(ctx context.Context) (fees.Recommendation, error)

	// LastDrip returns the latest ledger entry for recipient.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout.
	//   - recipient: the hex address to look up.
	//
	// Returns:
	//   - The last recorded drip or register of the recipient.
	//   - ErrNoDripRecorded if the recipient was never served, or a validation
	//     or storage error.
	LastDrip(ctx context.Context, recipient string) (DripRecord, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	chain      Chain
	estimator  *fees.Estimator
	serializer *serializer.Serializer
	ledger     DripLedger

	contract       common.Address
	registerAmount *big.Int
	cooldown       time.Duration

	now      func() time.Time
	tracer   trace.Tracer
	outcomes metric.Int64Counter
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// Drip implements Service. It encodes drip(recipient, keys) against the
// configured contract.
func (s *service) Drip(ctx context.Context, req DripRequest) (outcome.Outcome, error) {
	recipient, err := req.recipient()
	if err != nil {
		return outcome.Outcome{}, err
	}

	if s.contract == (common.Address{}) {
		return outcome.Outcome{}, ErrContractNotConfigured
	}

	data, err := encodeDrip(recipient, req.keys())
	if err != nil {
		return outcome.Outcome{}, err
	}

	return s.submit(ctx, ActionDrip, recipient, Call{To: s.contract, Data: data}, !req.NoWait)
}

// Register implements Service. A request without Value sends the configured
// register amount.
func (s *service) Register(ctx context.Context, req TransactionRequest) (outcome.Outcome, error) {
	recipient, err := req.recipient()
	if err != nil {
		return outcome.Outcome{}, err
	}

	value := req.Value
	if value == nil {
		value = s.registerAmount
	}

	return s.submit(ctx, ActionRegister, recipient, Call{To: recipient, Value: new(big.Int).Set(value)}, !req.NoWait)
}

// Fees implements Service.
func (s *service) Fees(ctx context.Context) (fees.Recommendation, error) {
	return s.recommendFees(ctx)
}

// lastDripQuery validates the address given to LastDrip.
type lastDripQuery struct {
	Recipient string `validate:"required,eth_addr"`
}

// LastDrip implements Service.
func (s *service) LastDrip(ctx context.Context, recipient string) (DripRecord, error) {
	if err := validator.Validate(lastDripQuery{Recipient: recipient}); err != nil {
		return DripRecord{}, err
	}

	return s.ledger.LastDrip(ctx, common.HexToAddress(recipient))
}

// submit runs one faucet request end to end and reports its outcome to the
// logs, the span and the outcome counter.
func (s *service) submit(ctx context.Context, action string, recipient common.Address, call Call, wait bool) (outcome.Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "faucet."+action, trace.WithAttributes(
		attribute.String("faucet.recipient", recipient.Hex()),
		attribute.Bool("faucet.wait", wait),
	))
	defer span.End()

	ctx = logger.Derive(ctx, "faucet.action", action, "faucet.recipient", recipient.Hex())

	res, err := s.execute(ctx, action, recipient, call, wait)
	if err != nil {
		recordSpanError(span, err)
		logger.Error(ctx, "faucet request could not be completed", "error", err)
		return outcome.Outcome{}, err
	}

	s.outcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("action", action),
		attribute.String("outcome", res.Kind().String()),
	))
	span.SetAttributes(attribute.String("faucet.outcome", res.Kind().String()))

	logOutcome(ctx, res)
	return res, nil
}

// execute claims the recipient, estimates fees, broadcasts under the
// serializer and resolves the outcome. Every path that broadcast nothing
// releases the claim.
func (s *service) execute(ctx context.Context, action string, recipient common.Address, call Call, wait bool) (outcome.Outcome, error) {
	if s.cooldown > 0 {
		err := s.ledger.ClaimRecipient(ctx, recipient, s.cooldown)
		if errors.Is(err, ErrRecipientCoolingDown) {
			return outcome.RateLimited(), nil
		}

		if err != nil {
			return outcome.Outcome{}, err
		}
	}

	fee, err := s.recommendFees(ctx)
	if err != nil {
		s.releaseClaim(ctx, recipient)
		return outcome.Outcome{}, err
	}

	hash, err := s.broadcast(ctx, call, fee)
	if err != nil {
		s.releaseClaim(ctx, recipient)
		if errors.Is(err, serializer.ErrPoisoned) || errors.Is(err, errNotBroadcast) {
			return outcome.Outcome{}, err
		}

		return outcome.Classify(err), nil
	}

	logger.Info(ctx, "faucet transaction broadcast", "tx.hash", hash.Hex())

	res, err := s.awaitOutcome(ctx, hash, wait)
	if err != nil {
		s.record(ctx, action, recipient, outcome.Pending(hash))
		return outcome.Outcome{}, err
	}

	s.record(ctx, action, recipient, res)
	return res, nil
}

// errNotBroadcast marks a serializer wait abandoned before the transaction
// was built.
var errNotBroadcast = errors.New("transaction was not broadcast")

// broadcast hands call to the chain while holding the serializer.
func (s *service) broadcast(ctx context.Context, call Call, fee fees.Recommendation) (common.Hash, error) {
	ctx, span := s.tracer.Start(ctx, "faucet.broadcast")
	defer span.End()

	var (
		hash    common.Hash
		entered bool
	)
	err := s.serializer.Do(ctx, func(ctx context.Context) error {
		entered = true

		var err error
		hash, err = s.chain.Broadcast(ctx, call, fee)
		return err
	})
	if err != nil && !entered && !errors.Is(err, serializer.ErrPoisoned) {
		err = errors.Join(errNotBroadcast, err)
	}

	if err != nil {
		recordSpanError(span, err)
		return common.Hash{}, err
	}

	span.SetAttributes(attribute.String("tx.hash", hash.Hex()))
	return hash, nil
}

// awaitOutcome resolves an accepted transaction, tracing the inclusion wait
// when there is one.
func (s *service) awaitOutcome(ctx context.Context, hash common.Hash, wait bool) (outcome.Outcome, error) {
	if !wait {
		return outcome.FromBroadcast(ctx, hash, wait, s.chain)
	}

	ctx, span := s.tracer.Start(ctx, "faucet.await_inclusion", trace.WithAttributes(
		attribute.String("tx.hash", hash.Hex()),
	))
	defer span.End()

	res, err := outcome.FromBroadcast(ctx, hash, wait, s.chain)
	if err != nil {
		recordSpanError(span, err)
	}

	return res, err
}

// recommendFees estimates fees from fresh history inside its own span.
func (s *service) recommendFees(ctx context.Context) (fees.Recommendation, error) {
	ctx, span := s.tracer.Start(ctx, "faucet.estimate_fees")
	defer span.End()

	rec, err := s.estimator.Recommend(ctx)
	if err != nil {
		recordSpanError(span, err)
		return fees.Recommendation{}, err
	}

	span.SetAttributes(
		attribute.String("fees.priority_fee", rec.PriorityFee.Dec()),
		attribute.String("fees.fee_cap", rec.FeeCap.Dec()),
	)
	return rec, nil
}

// releaseClaim frees the cooldown claim of a request that broadcast nothing.
// The ledger call is detached from ctx's cancellation and bounded by
// releaseTimeout, so it still runs after the caller gave up.
func (s *service) releaseClaim(ctx context.Context, recipient common.Address) {
	if s.cooldown <= 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	if err := s.ledger.ReleaseRecipient(ctx, recipient); err != nil {
		logger.Warn(ctx, "failed to release recipient cooldown", "error", err)
	}
}

// record writes the ledger entry. Ledger failures are logged and never turn
// an accepted transaction into an error.
func (s *service) record(ctx context.Context, action string, recipient common.Address, res outcome.Outcome) {
	hash, _ := res.Hash()

	err := s.ledger.RecordDrip(ctx, DripRecord{
		Action:    action,
		Recipient: recipient,
		TxHash:    hash,
		Outcome:   res.Kind().String(),
		At:        s.now().UTC(),
	})
	if err != nil {
		logger.Warn(ctx, "failed to record faucet transaction", "tx.hash", hash.Hex(), "error", err)
	}
}

// logOutcome logs served and refused requests at info and failures at warn.
func logOutcome(ctx context.Context, res outcome.Outcome) {
	switch res.Kind() {
	case outcome.KindSuccess, outcome.KindPending:
		hash, _ := res.Hash()
		logger.Info(ctx, "faucet request served", "outcome", res.Kind().String(), "tx.hash", hash.Hex())
	case outcome.KindFailure:
		logger.Warn(ctx, "faucet request failed", "outcome", res.Kind().String(), "reason", res.Message())
	default:
		logger.Info(ctx, "faucet request refused", "outcome", res.Kind().String())
	}
}

// recordSpanError marks span as failed with err.
func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// config collects the settings applied by Option values before New builds the service.
type config struct {
	contract       common.Address
	registerAmount *big.Int
	ledger         DripLedger
	cooldown       time.Duration
	serializer     *serializer.Serializer
}

// Option customizes the service built by New.
//
// Example:
//
//	svc := faucet.New(chain,
//	    faucet.WithContract(contract),
//	    faucet.WithLedger(ledger),
//	    faucet.WithCooldown(24*time.Hour),
//	)
type Option func(*config)

// New builds the faucet service on top of chain.
//
// Without options, drips are disabled until a contract is set, register
// sends 1 wei, nothing is recorded and no cooldown applies.
func New(chain Chain, opts ...Option) *service {
	cfg := config{
		registerAmount: big.NewInt(1),
		ledger:         nopLedger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.serializer == nil {
		cfg.serializer = serializer.New()
	}

	meter := otel.Meter(instrumentationName)
	outcomes, err := meter.Int64Counter("faucet.outcomes",
		metric.WithDescription("Faucet requests by outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		logger.Warn(context.Background(), "failed to create outcome counter", "error", err)
		outcomes = noop.Int64Counter{}
	}

	return &service{
		chain:          chain,
		estimator:      fees.NewEstimator(chain),
		serializer:     cfg.serializer,
		ledger:         cfg.ledger,
		contract:       cfg.contract,
		registerAmount: cfg.registerAmount,
		cooldown:       cfg.cooldown,
		now:            time.Now,
		tracer:         otel.Tracer(instrumentationName),
		outcomes:       outcomes,
	}
}

// WithContract sets the address of the faucet contract called by Drip.
func WithContract(address common.Address) Option {
	return func(c *config) {
		c.contract = address
	}
}

// WithRegisterAmount sets the value, in wei, sent by Register when the
// request does not carry one.
func WithRegisterAmount(amount *big.Int) Option {
	return func(c *config) {
		c.registerAmount = amount
	}
}

// WithLedger records every accepted transaction in ledger and uses it for
// cooldown claims. Without it nothing is recorded and LastDrip always
// returns ErrNoDripRecorded.
func WithLedger(ledger DripLedger) Option {
	return func(c *config) {
		c.ledger = ledger
	}
}

// WithCooldown makes the service claim each recipient in the ledger for d
// before broadcasting. Zero disables the claim.
func WithCooldown(d time.Duration) Option {
	return func(c *config) {
		c.cooldown = d
	}
}

// WithSerializer shares a serializer between services signing with the same key.
func WithSerializer(s *serializer.Serializer) Option {
	return func(c *config) {
		c.serializer = s
	}
}
