// Package http builds the retrying HTTP client shared by the outbound
// transports (currently the JSON-RPC client talking to the chain node).
package http

import (
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

type config struct {
	timeout      time.Duration // per attempt
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
}

// Option configures the client returned by NewClient.
type Option func(*config)

// NewClient returns a retryablehttp.Client with its internal logger disabled.
// Defaults: 5s timeout per attempt, waits between 1s and 5s, 2 retries.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	return client
}

// WithTimeout sets the timeout of a single attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum wait between attempts.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum wait between attempts.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a failed request is retried.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}
