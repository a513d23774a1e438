package token_test

import (
	"math/big"
	"net/http"
	"testing"

	"github.com/assettoken/asset-token/internal/api"
	"github.com/assettoken/asset-token/internal/api/httperrors"
	"github.com/assettoken/asset-token/internal/config"
	"github.com/assettoken/asset-token/internal/test"
	"github.com/assettoken/asset-token/internal/token"
	"github.com/assettoken/asset-token/internal/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sender = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"

func TestPostTransferSuccess(t *testing.T) {
	fake := test.NewFakeToken()
	fake.SetBalance(common.HexToAddress(sender), big.NewInt(100))

	test.WithTestServerWithToken(t, config.DefaultServiceConfigFromEnv(), fake, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/transfer", test.GenericPayload{
			"from_address": sender,
			"to_address":   recipient,
			"amount":       " 40 ",
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.TransferResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, types.TransferResponseStatusSuccess, *response.Status)
		assert.Equal(t, "Transfer successful", *response.Message)
		assert.Equal(t, test.FakeTxHash(1).Hex(), *response.TxHash)

		transfers := fake.Transfers()
		require.Len(t, transfers, 1)
		assert.Equal(t, common.HexToAddress(sender), transfers[0].From)
		assert.Equal(t, common.HexToAddress(recipient), transfers[0].To)
		assert.Equal(t, big.NewInt(40), transfers[0].Amount)

		res = test.PerformRequestWithParams(t, s, "GET", "/balance", nil, nil, map[string]string{"address": recipient})
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var balance types.GetBalanceResponse
		test.ParseResponseAndValidate(t, res, &balance)
		assert.Equal(t, "40", *balance.Balance)
	})
}

func TestPostTransferReverted(t *testing.T) {
	fake := test.NewFakeToken()

	test.WithTestServerWithToken(t, config.DefaultServiceConfigFromEnv(), fake, func(s *api.Server) {
		// sender holds no tokens
		res := test.PerformRequest(t, s, "POST", "/transfer", test.GenericPayload{
			"from_address": sender,
			"to_address":   recipient,
			"amount":       5,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.TransferResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, types.TransferResponseStatusFailed, *response.Status)
		assert.Equal(t, "Transfer reverted", *response.Message)
	})
}

func TestPostTransferInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		payload  test.GenericPayload
		expected *httperrors.HTTPError
	}{
		{
			name:     "invalid from",
			payload:  test.GenericPayload{"from_address": "nope", "to_address": recipient, "amount": 1},
			expected: httperrors.ErrBadRequestInvalidAddress,
		},
		{
			name:     "invalid to",
			payload:  test.GenericPayload{"from_address": sender, "to_address": "0x1234", "amount": 1},
			expected: httperrors.ErrBadRequestInvalidAddress,
		},
		{
			name:     "zero to",
			payload:  test.GenericPayload{"from_address": sender, "to_address": "0x0000000000000000000000000000000000000000", "amount": 1},
			expected: httperrors.ErrBadRequestInvalidAddress,
		},
		{
			name:     "zero amount",
			payload:  test.GenericPayload{"from_address": sender, "to_address": recipient, "amount": "0"},
			expected: httperrors.ErrBadRequestInvalidAmount,
		},
		{
			name:     "fraction",
			payload:  test.GenericPayload{"from_address": sender, "to_address": recipient, "amount": 2.5},
			expected: httperrors.ErrBadRequestInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := test.NewFakeToken()

			test.WithTestServerWithToken(t, config.DefaultServiceConfigFromEnv(), fake, func(s *api.Server) {
				res := test.PerformRequest(t, s, "POST", "/transfer", tt.payload, nil)
				test.RequireHTTPError(t, res, tt.expected)
				assert.Empty(t, fake.Transfers())
			})
		})
	}
}

func TestPostTransferMissingFields(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/transfer", test.GenericPayload{"amount": 1}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response types.PublicHTTPValidationError
		test.ParseResponseBody(t, res, &response)

		keys := make([]string, 0, len(response.ValidationErrors))
		for _, v := range response.ValidationErrors {
			keys = append(keys, *v.Key)
		}
		assert.ElementsMatch(t, []string{"from_address", "to_address"}, keys)
	})
}

func TestPostTransferChainUnavailable(t *testing.T) {
	fake := test.NewFakeToken()
	fake.SetErr(errors.Wrap(token.ErrNoRPCAvailable, "failed to send transfer transaction"))

	test.WithTestServerWithToken(t, config.DefaultServiceConfigFromEnv(), fake, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/transfer", test.GenericPayload{
			"from_address": sender,
			"to_address":   recipient,
			"amount":       1,
		}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrServiceUnavailableChain)
	})
}
