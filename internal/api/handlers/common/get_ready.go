package common

import (
	"context"
	"net/http"

	"github.com/assettoken/asset-token/internal/api"
	"github.com/assettoken/asset-token/internal/util"
	"github.com/labstack/echo/v4"
)

// statusNotReady is not part of net/http, it is used by some CDNs for "web server is down".
const statusNotReady = 521

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// Readiness is given once all components are initialized and the chain node answers.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(statusNotReady, "Not ready.")
		}

		ctx := c.Request().Context()
		if s.Config.Management.ReadinessTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.Config.Management.ReadinessTimeout)
			defer cancel()
		}

		if err := s.Token.Healthy(ctx); err != nil {
			util.LogFromContext(ctx).Warn().Err(err).Msg("Chain node is not reachable")
			return c.String(statusNotReady, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
