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

func PostTransferRoute(s *api.Server) *echo.Route {
	return s.Router.Root.POST("/transfer", postTransferHandler(s))
}

func postTransferHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostTransferPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			s.Metrics.ObserveTransfer(metrics.OutcomeInvalidInput)
			return err
		}

		fromAddress := swag.StringValue(body.FromAddress)
		toAddress := swag.StringValue(body.ToAddress)
		if !common.IsHexAddress(fromAddress) || !common.IsHexAddress(toAddress) {
			s.Metrics.ObserveTransfer(metrics.OutcomeInvalidInput)
			return httperrors.ErrBadRequestInvalidAddress
		}

		amount, ok := parseAmount(body.Amount)
		if !ok {
			s.Metrics.ObserveTransfer(metrics.OutcomeInvalidInput)
			return httperrors.ErrBadRequestInvalidAmount
		}

		start := time.Now()
		result, err := s.Token.Transfer(ctx, common.HexToAddress(fromAddress), common.HexToAddress(toAddress), amount)
		s.Metrics.ObserveChainCall("transfer", start)
		if err != nil {
			switch {
			case errors.Is(err, token.ErrZeroAddress):
				s.Metrics.ObserveTransfer(metrics.OutcomeInvalidInput)
				return httperrors.ErrBadRequestInvalidAddress
			case errors.Is(err, token.ErrInvalidAmount):
				s.Metrics.ObserveTransfer(metrics.OutcomeInvalidInput)
				return httperrors.ErrBadRequestInvalidAmount
			}

			log.Error().Err(err).
				Str("from", fromAddress).
				Str("to", toAddress).
				Str("amount", amount.String()).
				Msg("Failed to transfer tokens")
			s.Metrics.ObserveTransfer(metrics.OutcomeError)
			if errors.Is(err, token.ErrNoRPCAvailable) {
				return httperrors.ErrServiceUnavailableChain
			}
			return err
		}

		status := types.TransferResponseStatusSuccess
		message := "Transfer successful"
		outcome := metrics.OutcomeSuccess
		if !result.Succeeded() {
			status = types.TransferResponseStatusFailed
			message = "Transfer reverted"
			outcome = metrics.OutcomeFailed
		}
		s.Metrics.ObserveTransfer(outcome)

		now := strfmt.DateTime(time.Now().UTC())

		return util.ValidateAndReturn(c, http.StatusOK, &types.TransferResponse{
			Message:   swag.String(message),
			Status:    swag.String(status),
			Timestamp: &now,
			TxHash:    swag.String(result.TxHash.Hex()),
		})
	}
}
