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

func GetBalanceRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/balance", getBalanceHandler(s))
}

func getBalanceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		params := types.NewGetBalanceRouteParams()
		if err := util.BindAndValidateQueryParams(c, &params); err != nil {
			s.Metrics.ObserveBalance(metrics.OutcomeInvalidInput)
			return err
		}

		address := swag.StringValue(params.Address)
		if !common.IsHexAddress(address) {
			s.Metrics.ObserveBalance(metrics.OutcomeInvalidInput)
			return httperrors.ErrBadRequestInvalidAddress
		}
		account := common.HexToAddress(address)

		start := time.Now()
		balance, err := s.Token.BalanceOf(ctx, account)
		s.Metrics.ObserveChainCall("balanceOf", start)
		if err != nil {
			log.Error().Err(err).Str("address", address).Msg("Failed to get token balance")
			s.Metrics.ObserveBalance(metrics.OutcomeError)
			if errors.Is(err, token.ErrNoRPCAvailable) {
				return httperrors.ErrServiceUnavailableChain
			}
			return err
		}
		s.Metrics.ObserveBalance(metrics.OutcomeSuccess)

		now := strfmt.DateTime(time.Now().UTC())

		return util.ValidateAndReturn(c, http.StatusOK, &types.GetBalanceResponse{
			Balance:       swag.String(balance.String()),
			Timestamp:     &now,
			WalletAddress: swag.String(account.Hex()),
		})
	}
}
