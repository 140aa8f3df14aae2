// Package retry wraps avast/retry-go behind a small interface so callers can
// poll or retry chain operations with exponential backoff and swap the
// implementation out in tests.
//
//	r := retry.New(
//	    retry.WithAttempts(30),
//	    retry.WithDelay(time.Second),
//	    retry.WithRetryIf(func(err error) bool { return errors.Is(err, ErrNotYet) }),
//	)
//	err := r.Execute(ctx, poll)
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, the attempts run out, the
// retry predicate rejects the error, or ctx is done.
type Retry interface {
	// Execute runs operation until it returns nil or retrying stops.
	//
	// Parameters:
	//   - ctx: stops retrying once done; its error is returned.
	//   - operation: the call to repeat. It must be safe to run more than once.
	//
	// Returns:
	//   - nil on success, otherwise the last error (or all of them when
	//     WithLastErrorOnly(false) is set).
	Execute(ctx context.Context, operation func() error) error
}

// config holds the retry settings applied by Option values.
type config struct {
	attempts    uint
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
	retryIf     func(error) bool // nil retries every error
	backoff     bool             // false keeps a fixed delay
}

// Option configures a Retry built by New.
type Option func(*config)

// retrier is the retry-go backed implementation of Retry.
type retrier struct {
	cfg config
}

// Ensure compile-time compliance with the Retry interface.
var _ Retry = (*retrier)(nil)

// New returns a Retry with the given options applied over the defaults:
// 3 attempts, 1s base delay capped at 5s, exponential backoff, only the last
// error reported, every error retried.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		backoff:     true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements Retry. The first attempt runs immediately.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	delayType := retry.FixedDelay
	if r.cfg.backoff {
		delayType = retry.BackOffDelay
	}

	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(delayType),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	if r.cfg.retryIf != nil {
		options = append(options, retry.RetryIf(r.cfg.retryIf))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the total number of attempts, including the first one.
// Zero retries until ctx is done.
// Default: 3.
//
// Example:
//
//	// Poll until the caller's context ends
//	retry.New(retry.WithAttempts(0))
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts. With exponential backoff
// later delays grow from it.
// Default: 1 second.
//
// Example:
//
//	retry.New(retry.WithDelay(500 * time.Millisecond))
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts.
// Default: 5 seconds.
//
// Example:
//
//	retry.New(retry.WithMaxDelay(10 * time.Second))
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly reports only the error of the final attempt when true,
// and every attempt's error when false.
// Default: true.
//
// Example:
//
//	retry.New(retry.WithLastErrorOnly(false))
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf restricts retries to errors accepted by fn. Any other error
// is returned immediately.
// Default: every error is retried.
//
// Example:
//
//	// Keep polling only while the receipt is missing
//	retry.New(retry.WithRetryIf(func(err error) bool {
//	    return errors.Is(err, ErrReceiptNotFound)
//	}))
func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}

// WithFixedDelay disables exponential backoff so every attempt waits the
// base delay.
//
// Example:
//
//	retry.New(retry.WithDelay(2*time.Second), retry.WithFixedDelay())
func WithFixedDelay() Option {
	return func(c *config) {
		c.backoff = false
	}
}
