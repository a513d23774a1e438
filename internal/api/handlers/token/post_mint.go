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

func PostMintRoute(s *api.Server) *echo.Route {
	return s.Router.Root.POST("/mint", postMintHandler(s))
}

func postMintHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostMintPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			s.Metrics.ObserveMint(metrics.OutcomeInvalidInput)
			return err
		}

		recipient := swag.StringValue(body.Recipient)
		if !common.IsHexAddress(recipient) {
			s.Metrics.ObserveMint(metrics.OutcomeInvalidInput)
			return httperrors.ErrBadRequestInvalidAddress
		}

		amount, ok := parseAmount(body.Amount)
		if !ok {
			s.Metrics.ObserveMint(metrics.OutcomeInvalidInput)
			return httperrors.ErrBadRequestInvalidAmount
		}

		start := time.Now()
		result, err := s.Token.Mint(ctx, common.HexToAddress(recipient), amount)
		s.Metrics.ObserveChainCall("mint", start)
		if err != nil {
			switch {
			case errors.Is(err, token.ErrZeroAddress):
				s.Metrics.ObserveMint(metrics.OutcomeInvalidInput)
				return httperrors.ErrBadRequestInvalidAddress
			case errors.Is(err, token.ErrInvalidAmount):
				s.Metrics.ObserveMint(metrics.OutcomeInvalidInput)
				return httperrors.ErrBadRequestInvalidAmount
			}

			log.Error().Err(err).Str("recipient", recipient).Str("amount", amount.String()).Msg("Failed to mint tokens")
			s.Metrics.ObserveMint(metrics.OutcomeError)
			if errors.Is(err, token.ErrNoRPCAvailable) {
				return httperrors.ErrServiceUnavailableChain
			}
			return err
		}

		status := types.MintResponseStatusSuccess
		outcome := metrics.OutcomeSuccess
		if !result.Succeeded() {
			status = types.MintResponseStatusFailed
			outcome = metrics.OutcomeFailed
		}
		s.Metrics.ObserveMint(outcome)

		txHash := result.TxHash.Hex()
		now := strfmt.DateTime(time.Now().UTC())

		return util.ValidateAndReturn(c, http.StatusOK, &types.MintResponse{
			Status:          swag.String(status),
			Timestamp:       &now,
			TransactionHash: swag.String(txHash),
			TxHash:          swag.String(txHash),
		})
	}
}
