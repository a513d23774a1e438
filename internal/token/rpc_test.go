package token

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcNode struct {
	*httptest.Server
	calls atomic.Int32
}

// newRPCNode answers eth_chainId and eth_blockNumber, or fails every request with status if it is not 200.
func newRPCNode(t *testing.T, status int, blockNumber uint64) *rpcNode {
	t.Helper()

	node := &rpcNode{}
	node.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		node.calls.Add(1)

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var result string
		switch req.Method {
		case "eth_chainId":
			result = "0x539"
		case "eth_blockNumber":
			result = fmt.Sprintf("0x%x", blockNumber)
		default:
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"error":{"code":-32601,"message":"method not found"}}`, req.ID)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%q}`, req.ID, result)
	}))
	t.Cleanup(node.Close)

	return node
}

func (c *RPCClient) currentIndex() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func TestRPCClientUsesFirstHealthyNode(t *testing.T) {
	first := newRPCNode(t, http.StatusOK, 10)
	second := newRPCNode(t, http.StatusOK, 20)

	c, err := NewRPCClient([]string{first.URL, second.URL})
	require.NoError(t, err)
	t.Cleanup(c.Close)

	n, err := c.BlockNumber(t.Context())
	require.NoError(t, err)
	assert.Equal(t, uint64(10), n)
	assert.Equal(t, 0, c.currentIndex())
	assert.Zero(t, second.calls.Load())
}

func TestRPCClientFailsOver(t *testing.T) {
	tests := []struct {
		name  string
		first func(t *testing.T) string
	}{
		{
			name: "node returns 500",
			first: func(t *testing.T) string {
				return newRPCNode(t, http.StatusInternalServerError, 0).URL
			},
		},
		{
			name: "node is down",
			first: func(t *testing.T) string {
				node := newRPCNode(t, http.StatusOK, 0)
				node.Close()
				return node.URL
			},
		},
		{
			name: "node cannot be dialed",
			first: func(_ *testing.T) string {
				return "ws://127.0.0.1:1"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			second := newRPCNode(t, http.StatusOK, 20)

			c, err := NewRPCClient([]string{tt.first(t), second.URL})
			require.NoError(t, err)
			t.Cleanup(c.Close)

			n, err := c.BlockNumber(t.Context())
			require.NoError(t, err)
			assert.Equal(t, uint64(20), n)
			assert.Equal(t, 1, c.currentIndex())

			// the next call starts at the node that answered last
			calls := second.calls.Load()
			chainID, err := c.ChainID(t.Context())
			require.NoError(t, err)
			assert.Equal(t, int64(1337), chainID.Int64())
			assert.Equal(t, 1, c.currentIndex())
			assert.Equal(t, calls+2, second.calls.Load())
		})
	}
}

func TestRPCClientStaysOnNodeAfterFailover(t *testing.T) {
	first := newRPCNode(t, http.StatusInternalServerError, 0)
	second := newRPCNode(t, http.StatusOK, 20)

	c, err := NewRPCClient([]string{first.URL, second.URL})
	require.NoError(t, err)
	t.Cleanup(c.Close)

	_, err = c.BlockNumber(t.Context())
	require.NoError(t, err)
	failed := first.calls.Load()
	assert.Positive(t, failed)

	_, err = c.BlockNumber(t.Context())
	require.NoError(t, err)
	assert.Equal(t, failed, first.calls.Load())
	assert.Equal(t, 1, c.currentIndex())
}

func TestRPCClientAllNodesDown(t *testing.T) {
	first := newRPCNode(t, http.StatusInternalServerError, 0)
	second := newRPCNode(t, http.StatusBadGateway, 0)

	c, err := NewRPCClient([]string{first.URL, second.URL})
	require.NoError(t, err)
	t.Cleanup(c.Close)

	_, err = c.BlockNumber(t.Context())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoRPCAvailable))
	assert.Equal(t, 0, c.currentIndex())
}

func TestNewRPCClient(t *testing.T) {
	_, err := NewRPCClient(nil)
	require.Error(t, err)

	_, err = NewRPCClient([]string{"ws://127.0.0.1:1"})
	require.Error(t, err)
}
