package token_test

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/assettoken/asset-token/internal/token"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	contractAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	recipient       = common.HexToAddress("0x216a4A64E1e699F9d65Dd9CbD0058dAB21DeF002")
)

func newTestSigner(t *testing.T) *token.Signer {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	return token.NewSigner(key)
}

func newTestService(t *testing.T, backend *fakeBackend, opts token.Options) (token.Service, *token.Signer) {
	t.Helper()

	if opts.Wait.PollInterval == 0 {
		opts.Wait.PollInterval = time.Millisecond
	}

	signer := newTestSigner(t)
	svc, err := token.NewService(backend, contractAddress, signer, opts)
	require.NoError(t, err)

	return svc, signer
}

func TestMintSendsSignedMintCall(t *testing.T) {
	backend := newFakeBackend()
	svc, signer := newTestService(t, backend, token.Options{})

	result, err := svc.Mint(t.Context(), recipient, big.NewInt(1000))
	require.NoError(t, err)

	sent := backend.sentTransactions()
	require.Len(t, sent, 1)
	tx := sent[0]

	assert.Equal(t, tx.Hash(), result.TxHash)
	assert.True(t, result.Succeeded())
	assert.Equal(t, big.NewInt(101), result.BlockNumber)

	assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
	require.NotNil(t, tx.To())
	assert.Equal(t, contractAddress, *tx.To())
	assert.Equal(t, uint64(7), tx.Nonce())
	assert.Equal(t, uint64(51_234), tx.Gas())
	assert.Equal(t, big.NewInt(1_000_000_000), tx.GasTipCap())
	assert.Equal(t, big.NewInt(5_000_000_000), tx.GasFeeCap())
	assert.Equal(t, 0, tx.Value().Sign())

	contract, err := token.NewContract()
	require.NoError(t, err)
	expectedData, err := contract.PackMint(recipient, big.NewInt(1000))
	require.NoError(t, err)
	assert.Equal(t, expectedData, tx.Data())

	from, err := types.Sender(types.NewLondonSigner(big.NewInt(1337)), tx)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), from)
}

func TestMintWaitsForReceipt(t *testing.T) {
	backend := newFakeBackend()
	backend.pendingPolls = 3
	svc, _ := newTestService(t, backend, token.Options{})

	result, err := svc.Mint(t.Context(), recipient, big.NewInt(1))
	require.NoError(t, err)
	assert.True(t, result.Succeeded())
	assert.Equal(t, 4, backend.receiptCalls)
}

func TestMintReportsRevertedTransaction(t *testing.T) {
	backend := newFakeBackend()
	backend.receiptStatus = types.ReceiptStatusFailed
	svc, _ := newTestService(t, backend, token.Options{})

	result, err := svc.Mint(t.Context(), recipient, big.NewInt(1))
	require.NoError(t, err)
	assert.False(t, result.Succeeded())
}

func TestMintReceiptTimeout(t *testing.T) {
	backend := newFakeBackend()
	backend.pendingPolls = 1 << 30
	svc, _ := newTestService(t, backend, token.Options{
		Wait: token.WaitOptions{PollInterval: time.Millisecond, Timeout: 20 * time.Millisecond},
	})

	_, err := svc.Mint(t.Context(), recipient, big.NewInt(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestMintUsesConfiguredGasLimit(t *testing.T) {
	backend := newFakeBackend()
	svc, _ := newTestService(t, backend, token.Options{GasLimit: 90_000})

	_, err := svc.Mint(t.Context(), recipient, big.NewInt(1))
	require.NoError(t, err)

	assert.Equal(t, 0, backend.estimateCalls)
	assert.Equal(t, uint64(90_000), backend.sentTransactions()[0].Gas())
}

func TestMintRejectsInvalidInput(t *testing.T) {
	backend := newFakeBackend()
	svc, _ := newTestService(t, backend, token.Options{})

	_, err := svc.Mint(t.Context(), recipient, big.NewInt(0))
	assert.ErrorIs(t, err, token.ErrInvalidAmount)

	_, err = svc.Mint(t.Context(), recipient, big.NewInt(-5))
	assert.ErrorIs(t, err, token.ErrInvalidAmount)

	_, err = svc.Mint(t.Context(), recipient, nil)
	assert.ErrorIs(t, err, token.ErrInvalidAmount)

	_, err = svc.Mint(t.Context(), common.Address{}, big.NewInt(1))
	assert.ErrorIs(t, err, token.ErrZeroAddress)

	assert.Empty(t, backend.sentTransactions())
}

func TestParallelMintsUseDistinctNonces(t *testing.T) {
	backend := newFakeBackend()
	svc, _ := newTestService(t, backend, token.Options{})

	const mints = 5
	var wg sync.WaitGroup
	for i := 0; i < mints; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Mint(t.Context(), recipient, big.NewInt(1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	nonces := map[uint64]bool{}
	for _, tx := range backend.sentTransactions() {
		nonces[tx.Nonce()] = true
	}
	assert.Len(t, nonces, mints)
}

func TestBalanceOf(t *testing.T) {
	backend := newFakeBackend()
	huge, ok := new(big.Int).SetString("1000000000000000000000000", 10)
	require.True(t, ok)
	backend.balances[recipient] = huge
	svc, _ := newTestService(t, backend, token.Options{})

	balance, err := svc.BalanceOf(t.Context(), recipient)
	require.NoError(t, err)
	assert.Equal(t, huge.String(), balance.String())

	balance, err = svc.BalanceOf(t.Context(), common.HexToAddress("0x01"))
	require.NoError(t, err)
	assert.Equal(t, "0", balance.String())
}

func TestHealthy(t *testing.T) {
	backend := newFakeBackend()
	svc, _ := newTestService(t, backend, token.Options{})

	require.NoError(t, svc.Healthy(t.Context()))

	backend.chainErr = errors.New("connection refused")
	require.Error(t, svc.Healthy(t.Context()))
}
