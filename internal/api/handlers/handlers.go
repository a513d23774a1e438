package handlers

import (
	"github.com/assettoken/asset-token/internal/api"
	"github.com/assettoken/asset-token/internal/api/handlers/common"
	"github.com/assettoken/asset-token/internal/api/handlers/graphql"
	"github.com/assettoken/asset-token/internal/api/handlers/token"
	"github.com/labstack/echo/v4"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetMetricsRoute(s),
		common.GetReadyRoute(s),
		common.GetVersionRoute(s),
		graphql.PostGraphQLRoute(s),
		token.GetBalanceRoute(s),
		token.GetHistoricalRoute(s),
		token.PostMintRoute(s),
		token.PostTransferRoute(s),
	}
}
