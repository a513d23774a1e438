package token_test

import (
	"math/big"
	"testing"

	"github.com/assettoken/asset-token/internal/token"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackMint(t *testing.T) {
	contract, err := token.NewContract()
	require.NoError(t, err)

	data, err := contract.PackMint(recipient, big.NewInt(1000))
	require.NoError(t, err)

	require.Len(t, data, 4+32+32)
	assert.Equal(t, common.FromHex("40c10f19"), data[:4])
	assert.Equal(t, recipient, common.BytesToAddress(data[4:36]))
	assert.Equal(t, int64(1000), new(big.Int).SetBytes(data[36:]).Int64())
}

func TestPackAndUnpackBalanceOf(t *testing.T) {
	contract, err := token.NewContract()
	require.NoError(t, err)

	data, err := contract.PackBalanceOf(recipient)
	require.NoError(t, err)
	assert.Equal(t, common.FromHex("70a08231"), data[:4])

	balance, err := contract.UnpackBalanceOf(common.LeftPadBytes(big.NewInt(42).Bytes(), 32))
	require.NoError(t, err)
	assert.Equal(t, int64(42), balance.Int64())

	_, err = contract.UnpackBalanceOf([]byte{0x01})
	require.Error(t, err)
}
