// Package jsonrpc provides a JSON-RPC 2.0 client over HTTP with automatic
// retries and configurable timeouts. Error responses are surfaced as *Error so
// callers can inspect the code and the optional data member (for example the
// revert payload returned by an Ethereum node).
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	httptransport "github.com/gabapcia/faucet/internal/pkg/transport/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
var ErrProviderReturnedError = errors.New("provider error")

// Error is a JSON-RPC error object. It matches ErrProviderReturnedError with errors.Is.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

func (e *Error) Is(target error) bool {
	return target == ErrProviderReturnedError
}

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string          `json:"jsonrpc"`
	Error   *Error          `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// Err returns the response error, or nil when the call succeeded.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return r.Error
}

// Client sends JSON-RPC requests and returns the raw result.
type Client interface {
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	providerEndpoint string
	httpClient       *retryablehttp.Client
}

var _ Client = (*client)(nil)

// Fetch sends a single request. The request id is a random UUID.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

type config struct {
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
}

// Option customizes the client built by NewClient.
type Option func(*config)

// NewClient returns a client for providerEndpoint. Defaults: 5s timeout,
// retry waits between 1s and 5s, 2 retries.
func NewClient(providerEndpoint string, opts ...Option) *client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		providerEndpoint: providerEndpoint,
		httpClient: httptransport.NewClient(
			httptransport.WithTimeout(cfg.timeout),
			httptransport.WithRetryWaitMin(cfg.retryWaitMin),
			httptransport.WithRetryWaitMax(cfg.retryWaitMax),
			httptransport.WithRetryMax(cfg.retryMax),
		),
	}
}

// WithTimeout configures the maximum duration for a single HTTP request.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin configures the minimum wait between retry attempts.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax configures the maximum wait between retry attempts.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax configures how many times a failed HTTP request is retried.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}
