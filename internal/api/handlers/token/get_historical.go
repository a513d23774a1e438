package token

import (
	"net/http"
	"time"

	"github.com/assettoken/asset-token/internal/api"
	"github.com/assettoken/asset-token/internal/api/httperrors"
	"github.com/assettoken/asset-token/internal/metrics"
	"github.com/assettoken/asset-token/internal/token"
	"github.com/assettoken/asset-token/internal/types"
	"github.com/assettoken/asset-token/internal/util"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

func GetHistoricalRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/historical", getHistoricalHandler(s))
}

func getHistoricalHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		params := types.NewGetHistoricalRouteParams()
		if err := util.BindAndValidateQueryParams(c, &params); err != nil {
			s.Metrics.ObserveHistory(metrics.OutcomeInvalidInput)
			return err
		}

		startDate, err := time.Parse(dateLayout, swag.StringValue(params.StartDate))
		if err != nil {
			s.Metrics.ObserveHistory(metrics.OutcomeInvalidInput)
			return httperrors.ErrBadRequestInvalidDate
		}
		endDate, err := time.Parse(dateLayout, swag.StringValue(params.EndDate))
		if err != nil {
			s.Metrics.ObserveHistory(metrics.OutcomeInvalidInput)
			return httperrors.ErrBadRequestInvalidDate
		}
		if startDate.After(endDate) {
			s.Metrics.ObserveHistory(metrics.OutcomeInvalidInput)
			return httperrors.ErrBadRequestInvalidRange
		}

		// end_date is inclusive
		start := time.Now()
		entries, err := s.Token.History(ctx, startDate, endDate.AddDate(0, 0, 1))
		s.Metrics.ObserveChainCall("history", start)
		if err != nil {
			log.Error().Err(err).
				Str("start_date", startDate.Format(dateLayout)).
				Str("end_date", endDate.Format(dateLayout)).
				Msg("Failed to load transfer history")
			s.Metrics.ObserveHistory(metrics.OutcomeError)
			if errors.Is(err, token.ErrNoRPCAvailable) {
				return httperrors.ErrServiceUnavailableChain
			}
			return err
		}
		s.Metrics.ObserveHistory(metrics.OutcomeSuccess)

		transactions := make([]*types.HistoricalTransaction, 0, len(entries))
		for _, e := range entries {
			transactions = append(transactions, historicalTransaction(e))
		}

		periodStart := strfmt.Date(startDate)
		periodEnd := strfmt.Date(endDate)
		now := strfmt.DateTime(time.Now().UTC())

		return util.ValidateAndReturn(c, http.StatusOK, &types.HistoricalResponse{
			HistoricalData: &types.HistoricalData{
				Transactions: transactions,
			},
			Period: &types.HistoricalPeriod{
				Start: &periodStart,
				End:   &periodEnd,
			},
			Timestamp: &now,
		})
	}
}

func historicalTransaction(e token.HistoryEntry) *types.HistoricalTransaction {
	kind := types.HistoricalTransactionKindTransfer
	if e.From == (common.Address{}) {
		kind = types.HistoricalTransactionKindMint
	}

	timestamp := strfmt.DateTime(e.Timestamp)

	return &types.HistoricalTransaction{
		Amount:      swag.String(e.Amount.String()),
		BlockNumber: swag.Int64(int64(e.BlockNumber)), //nolint:gosec // block numbers fit into int64
		From:        swag.String(e.From.Hex()),
		Kind:        swag.String(kind),
		LogIndex:    swag.Int64(int64(e.LogIndex)), //nolint:gosec // log indexes fit into int64
		Timestamp:   &timestamp,
		To:          swag.String(e.To.Hex()),
		TxHash:      swag.String(e.TxHash.Hex()),
	}
}
