package token

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ErrNoRPCAvailable is returned when none of the configured nodes answers.
var ErrNoRPCAvailable = errors.New("all RPC clients are unavailable")

// RPCClient implements Backend on top of several RPC nodes and fails over between them.
type RPCClient struct {
	urls    []string
	clients []*ethclient.Client
	mu      sync.RWMutex
	current int // index of the node in use
}

// NewRPCClient dials all given URLs. Nodes that cannot be dialed are retried on use,
// but at least one has to be reachable right away.
func NewRPCClient(urls []string) (*RPCClient, error) {
	if len(urls) == 0 {
		return nil, errors.New("at least one RPC URL is required")
	}

	clients := make([]*ethclient.Client, 0, len(urls))
	for _, url := range urls {
		client, err := ethclient.Dial(url)
		if err != nil {
			log.Warn().
				Str("url", url).
				Err(err).
				Msg("Failed to connect to RPC node, will retry on use")
			clients = append(clients, nil)
			continue
		}
		clients = append(clients, client)
	}

	if allClientsNil(clients) {
		return nil, errors.New("failed to connect to any RPC node")
	}

	return &RPCClient{
		urls:    urls,
		clients: clients,
	}, nil
}

func allClientsNil(clients []*ethclient.Client) bool {
	for _, client := range clients {
		if client != nil {
			return false
		}
	}
	return true
}

// Close closes all node connections.
func (c *RPCClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, client := range c.clients {
		if client != nil {
			client.Close()
			c.clients[i] = nil
		}
	}
}

// withNode runs fn against the first healthy node and wraps its error with op.
func withNode[T any](ctx context.Context, c *RPCClient, op string, fn func(*ethclient.Client) (T, error)) (T, error) {
	var zero T

	client, err := c.getClient(ctx)
	if err != nil {
		return zero, errors.Wrap(err, "failed to get RPC client")
	}

	res, err := fn(client)
	if err != nil {
		return zero, errors.Wrapf(err, "failed to %s", op)
	}

	return res, nil
}

func (c *RPCClient) ChainID(ctx context.Context) (*big.Int, error) {
	return withNode(ctx, c, "get chain ID", func(client *ethclient.Client) (*big.Int, error) {
		return client.ChainID(ctx)
	})
}

func (c *RPCClient) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return withNode(ctx, c, "get pending nonce", func(client *ethclient.Client) (uint64, error) {
		return client.PendingNonceAt(ctx, account)
	})
}

func (c *RPCClient) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return withNode(ctx, c, "suggest gas tip cap", func(client *ethclient.Client) (*big.Int, error) {
		return client.SuggestGasTipCap(ctx)
	})
}

func (c *RPCClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return withNode(ctx, c, "get header", func(client *ethclient.Client) (*types.Header, error) {
		return client.HeaderByNumber(ctx, number)
	})
}

func (c *RPCClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	return withNode(ctx, c, "estimate gas", func(client *ethclient.Client) (uint64, error) {
		return client.EstimateGas(ctx, msg)
	})
}

func (c *RPCClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	_, err := withNode(ctx, c, "send transaction", func(client *ethclient.Client) (struct{}, error) {
		return struct{}{}, client.SendTransaction(ctx, tx)
	})

	return err
}

// TransactionReceipt returns ethereum.NotFound (wrapped) while the transaction is pending.
func (c *RPCClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return withNode(ctx, c, "get transaction receipt", func(client *ethclient.Client) (*types.Receipt, error) {
		return client.TransactionReceipt(ctx, txHash)
	})
}

func (c *RPCClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return withNode(ctx, c, "call contract", func(client *ethclient.Client) ([]byte, error) {
		return client.CallContract(ctx, msg, blockNumber)
	})
}

func (c *RPCClient) BlockNumber(ctx context.Context) (uint64, error) {
	return withNode(ctx, c, "get block number", func(client *ethclient.Client) (uint64, error) {
		return client.BlockNumber(ctx)
	})
}

func (c *RPCClient) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	return withNode(ctx, c, "filter logs", func(client *ethclient.Client) ([]types.Log, error) {
		return client.FilterLogs(ctx, query)
	})
}

// getClient returns the first healthy node, starting at the one that answered last.
func (c *RPCClient) getClient(ctx context.Context) (*ethclient.Client, error) {
	c.mu.RLock()
	start := c.current
	count := len(c.clients)
	c.mu.RUnlock()

	for i := 0; i < count; i++ {
		idx := (start + i) % count

		client, err := c.clientAt(idx)
		if err != nil {
			log.Warn().
				Str("url", c.urls[idx]).
				Err(err).
				Msg("Failed to reconnect to RPC node")
			continue
		}

		if _, err := client.ChainID(ctx); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			log.Warn().
				Str("url", c.urls[idx]).
				Err(err).
				Msg("RPC client health check failed, trying next node")
			continue
		}

		if idx != start {
			c.mu.Lock()
			c.current = idx
			c.mu.Unlock()
		}

		return client, nil
	}

	return nil, ErrNoRPCAvailable
}

// clientAt returns the client at idx, dialing it if the initial connection failed.
func (c *RPCClient) clientAt(idx int) (*ethclient.Client, error) {
	c.mu.RLock()
	client := c.clients[idx]
	c.mu.RUnlock()

	if client != nil {
		return client, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.clients[idx] != nil {
		return c.clients[idx], nil
	}

	client, err := ethclient.Dial(c.urls[idx])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial %s", c.urls[idx])
	}
	c.clients[idx] = client

	return client, nil
}
