package jsonrpc

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newNode starts a JSON-RPC server answering every request with handle's result.
func newNode(t *testing.T, handle func(req map[string]any) map[string]any) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		res := handle(req)
		res["jsonrpc"] = "2.0"
		res["id"] = req["id"]
		_ = json.NewEncoder(w).Encode(res)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestError(t *testing.T) {
	t.Run("formats code and message", func(t *testing.T) {
		err := &Error{Code: -32601, Message: "method not found"}

		assert.Equal(t, "provider error: [-32601] - method not found", err.Error())
	})

	t.Run("matches the provider sentinel", func(t *testing.T) {
		var err error = &Error{Code: 3, Message: "execution reverted"}

		assert.ErrorIs(t, err, ErrProviderReturnedError)
	})

	t.Run("response without error returns nil", func(t *testing.T) {
		assert.NoError(t, response{JsonRPC: "2.0"}.Err())
	})
}

func TestClient_Fetch(t *testing.T) {
	t.Run("sends a well formed request and returns the result", func(t *testing.T) {
		var captured map[string]any
		node := newNode(t, func(req map[string]any) map[string]any {
			captured = req
			return map[string]any{"result": "0x1"}
		})

		result, err := NewClient(node.URL).Fetch(t.Context(), "eth_chainId")
		require.NoError(t, err)

		assert.JSONEq(t, `"0x1"`, string(result))
		assert.Equal(t, "2.0", captured["jsonrpc"])
		assert.Equal(t, "eth_chainId", captured["method"])
		assert.Equal(t, []any{}, captured["params"])
		assert.NotEmpty(t, captured["id"])
	})

	t.Run("passes params in order", func(t *testing.T) {
		var captured map[string]any
		node := newNode(t, func(req map[string]any) map[string]any {
			captured = req
			return map[string]any{"result": nil}
		})

		_, err := NewClient(node.URL).Fetch(t.Context(), "eth_getBlockByNumber", "latest", false)
		require.NoError(t, err)

		assert.Equal(t, []any{"latest", false}, captured["params"])
	})

	t.Run("keeps the error data member", func(t *testing.T) {
		node := newNode(t, func(map[string]any) map[string]any {
			return map[string]any{"error": map[string]any{
				"code":    3,
				"message": "execution reverted",
				"data":    "0x5f1b2c4e",
			}}
		})

		result, err := NewClient(node.URL).Fetch(t.Context(), "eth_estimateGas")
		assert.Nil(t, result)

		var rpcErr *Error
		require.True(t, errors.As(err, &rpcErr))
		assert.Equal(t, 3, rpcErr.Code)
		assert.Equal(t, "execution reverted", rpcErr.Message)
		assert.JSONEq(t, `"0x5f1b2c4e"`, string(rpcErr.Data))
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("this is not json"))
		}))
		defer server.Close()

		result, err := NewClient(server.URL).Fetch(t.Context(), "eth_chainId")
		assert.Nil(t, result)
		assert.ErrorContains(t, err, "invalid character")
	})

	t.Run("node unreachable", func(t *testing.T) {
		server := httptest.NewServer(nil)
		server.Close()

		result, err := NewClient(server.URL, WithTimeout(time.Second), WithRetryMax(0)).Fetch(t.Context(), "eth_chainId")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestNewClient(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		c := NewClient("http://localhost:8545")

		assert.Equal(t, "http://localhost:8545", c.providerEndpoint)
		assert.Equal(t, 5*time.Second, c.httpClient.HTTPClient.Timeout)
		assert.Equal(t, time.Second, c.httpClient.RetryWaitMin)
		assert.Equal(t, 5*time.Second, c.httpClient.RetryWaitMax)
		assert.Equal(t, 2, c.httpClient.RetryMax)
	})

	t.Run("applies options", func(t *testing.T) {
		c := NewClient(
			"http://localhost:8545",
			WithTimeout(9*time.Second),
			WithRetryWaitMin(111*time.Millisecond),
			WithRetryWaitMax(3*time.Second),
			WithRetryMax(7),
		)

		assert.Equal(t, 9*time.Second, c.httpClient.HTTPClient.Timeout)
		assert.Equal(t, 111*time.Millisecond, c.httpClient.RetryWaitMin)
		assert.Equal(t, 3*time.Second, c.httpClient.RetryWaitMax)
		assert.Equal(t, 7, c.httpClient.RetryMax)
	})
}
