package token_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/assettoken/asset-token/internal/token"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeploy(t *testing.T) {
	backend := newFakeBackend()
	signer := newTestSigner(t)
	bytecode := []byte{0x60, 0x80, 0x60, 0x40, 0x52}

	res, err := token.Deploy(t.Context(), backend, signer, bytecode, token.DeployParams{
		Name:          "AssetToken",
		Symbol:        "AST",
		InitialSupply: big.NewInt(1_000_000),
	}, token.WaitOptions{PollInterval: time.Millisecond})
	require.NoError(t, err)

	sent := backend.sentTransactions()
	require.Len(t, sent, 1)
	tx := sent[0]

	assert.Nil(t, tx.To())
	assert.Equal(t, tx.Hash(), res.TxHash)
	assert.Equal(t, crypto.CreateAddress(signer.Address(), tx.Nonce()), res.Address)

	contract, err := token.NewContract()
	require.NoError(t, err)
	args, err := contract.PackConstructor("AssetToken", "AST", big.NewInt(1_000_000))
	require.NoError(t, err)

	assert.Equal(t, append(append([]byte{}, bytecode...), args...), tx.Data())
}

func TestDeployReverted(t *testing.T) {
	backend := newFakeBackend()
	backend.receiptStatus = types.ReceiptStatusFailed

	_, err := token.Deploy(t.Context(), backend, newTestSigner(t), []byte{0x60}, token.DeployParams{
		Name:          "AssetToken",
		Symbol:        "AST",
		InitialSupply: big.NewInt(1_000_000),
	}, token.WaitOptions{PollInterval: time.Millisecond})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reverted")
}

func TestDeployRejectsNegativeSupply(t *testing.T) {
	_, err := token.Deploy(t.Context(), newFakeBackend(), newTestSigner(t), []byte{0x60}, token.DeployParams{
		InitialSupply: big.NewInt(-1),
	}, token.WaitOptions{})
	require.Error(t, err)
}

func TestParseBytecode(t *testing.T) {
	code, err := token.ParseBytecode("0x6080604052\n")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x80, 0x60, 0x40, 0x52}, code)

	code, err = token.ParseBytecode("6080")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x80}, code)

	_, err = token.ParseBytecode("  ")
	require.Error(t, err)

	_, err = token.ParseBytecode("0x")
	require.Error(t, err)

	_, err = token.ParseBytecode("0xzz")
	require.Error(t, err)
}
