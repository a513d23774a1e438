package token_test

import (
	"math/big"
	"net/http"
	"testing"
	"time"

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

func historyEntry(block uint64, at time.Time, from string, amount int64) token.HistoryEntry {
	return token.HistoryEntry{
		Transfer: token.Transfer{
			From:        common.HexToAddress(from),
			To:          common.HexToAddress(recipient),
			Amount:      big.NewInt(amount),
			TxHash:      test.FakeTxHash(int(block)),
			BlockNumber: block,
			LogIndex:    1,
		},
		Timestamp: at,
	}
}

func TestGetHistorical(t *testing.T) {
	fake := test.NewFakeToken()
	fake.AddHistory(
		historyEntry(1, time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), sender, 1),
		historyEntry(2, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "0x0000000000000000000000000000000000000000", 2),
		historyEntry(3, time.Date(2024, 3, 2, 23, 59, 59, 0, time.UTC), sender, 3),
		historyEntry(4, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), sender, 4),
	)

	test.WithTestServerWithToken(t, config.DefaultServiceConfigFromEnv(), fake, func(s *api.Server) {
		res := test.PerformRequestWithParams(t, s, "GET", "/historical", nil, nil, map[string]string{
			"start_date": "2024-03-01",
			"end_date":   "2024-03-02",
		})
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.HistoricalResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, "2024-03-01", response.Period.Start.String())
		assert.Equal(t, "2024-03-02", response.Period.End.String())

		txs := response.HistoricalData.Transactions
		require.Len(t, txs, 2)

		assert.Equal(t, types.HistoricalTransactionKindMint, *txs[0].Kind)
		assert.Equal(t, "2", *txs[0].Amount)
		assert.Equal(t, int64(2), *txs[0].BlockNumber)
		assert.Equal(t, test.FakeTxHash(2).Hex(), *txs[0].TxHash)

		assert.Equal(t, types.HistoricalTransactionKindTransfer, *txs[1].Kind)
		assert.Equal(t, "3", *txs[1].Amount)
		assert.Equal(t, common.HexToAddress(sender).Hex(), *txs[1].From)
		assert.Equal(t, common.HexToAddress(recipient).Hex(), *txs[1].To)
		assert.Equal(t, int64(1), *txs[1].LogIndex)
	})
}

func TestGetHistoricalIncludesMintedTokens(t *testing.T) {
	fake := test.NewFakeToken()
	fake.Now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	test.WithTestServerWithToken(t, config.DefaultServiceConfigFromEnv(), fake, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/mint", test.GenericPayload{"recipient": recipient, "amount": 7}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		res = test.PerformRequestWithParams(t, s, "GET", "/historical", nil, nil, map[string]string{
			"start_date": "2024-03-01",
			"end_date":   "2024-03-01",
		})
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.HistoricalResponse
		test.ParseResponseAndValidate(t, res, &response)
		require.Len(t, response.HistoricalData.Transactions, 1)
		assert.Equal(t, types.HistoricalTransactionKindMint, *response.HistoricalData.Transactions[0].Kind)
		assert.Equal(t, "7", *response.HistoricalData.Transactions[0].Amount)
	})
}

func TestGetHistoricalEmpty(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequestWithParams(t, s, "GET", "/historical", nil, nil, map[string]string{
			"start_date": "2024-03-01",
			"end_date":   "2024-03-31",
		})
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.HistoricalResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Empty(t, response.HistoricalData.Transactions)
	})
}

func TestGetHistoricalInvalidDates(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected *httperrors.HTTPError
	}{
		{name: "bad start format", start: "01.03.2024", end: "2024-03-02", expected: httperrors.ErrBadRequestInvalidDate},
		{name: "bad end format", start: "2024-03-01", end: "2024-3-2", expected: httperrors.ErrBadRequestInvalidDate},
		{name: "no such day", start: "2024-02-30", end: "2024-03-02", expected: httperrors.ErrBadRequestInvalidDate},
		{name: "with time", start: "2024-03-01T00:00:00Z", end: "2024-03-02", expected: httperrors.ErrBadRequestInvalidDate},
		{name: "start after end", start: "2024-03-03", end: "2024-03-02", expected: httperrors.ErrBadRequestInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.WithTestServer(t, func(s *api.Server) {
				res := test.PerformRequestWithParams(t, s, "GET", "/historical", nil, nil, map[string]string{
					"start_date": tt.start,
					"end_date":   tt.end,
				})
				test.RequireHTTPError(t, res, tt.expected)
			})
		})
	}
}

func TestGetHistoricalMissingDates(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequestWithParams(t, s, "GET", "/historical", nil, nil, map[string]string{"start_date": "2024-03-01"})
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response types.PublicHTTPValidationError
		test.ParseResponseBody(t, res, &response)
		require.Len(t, response.ValidationErrors, 1)
		assert.Equal(t, "end_date", *response.ValidationErrors[0].Key)
	})
}

func TestGetHistoricalChainUnavailable(t *testing.T) {
	fake := test.NewFakeToken()
	fake.SetErr(errors.Wrap(token.ErrNoRPCAvailable, "failed to get block number"))

	test.WithTestServerWithToken(t, config.DefaultServiceConfigFromEnv(), fake, func(s *api.Server) {
		res := test.PerformRequestWithParams(t, s, "GET", "/historical", nil, nil, map[string]string{
			"start_date": "2024-03-01",
			"end_date":   "2024-03-02",
		})
		test.RequireHTTPError(t, res, httperrors.ErrServiceUnavailableChain)
	})
}
