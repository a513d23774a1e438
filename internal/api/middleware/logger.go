package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/assettoken/asset-token/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LoggerConfig defines the config for the LoggerWithConfig middleware.
type LoggerConfig struct {
	Skipper middleware.Skipper
	// Level of the request log line, errors are always logged with at least warn.
	Level zerolog.Level
	// LogCaller adds the file and line of every log call of the request logger.
	LogCaller bool
}

// LoggerWithConfig returns a middleware that attaches a request scoped zerolog logger to the
// request context and logs every request once it completed.
func LoggerWithConfig(config LoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = middleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			res := c.Response()

			id := req.Header.Get(echo.HeaderXRequestID)
			if len(id) == 0 {
				id = res.Header().Get(echo.HeaderXRequestID)
			}

			lctx := log.With().
				Str("id", id).
				Str("host", req.Host).
				Str("method", req.Method).
				Str("url", req.URL.String())
			if config.LogCaller {
				lctx = lctx.Caller()
			}
			logger := lctx.Logger()

			ctx := logger.WithContext(req.Context())
			ctx = context.WithValue(ctx, util.CTXKeyRequestID, id)
			c.SetRequest(req.WithContext(ctx))

			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			duration := time.Since(start)

			level := config.Level
			status := res.Status
			if status >= http.StatusInternalServerError && level < zerolog.WarnLevel {
				level = zerolog.WarnLevel
			}

			logger.WithLevel(level).
				Int("status", status).
				Int64("bytes_out", res.Size).
				Dur("duration_ms", duration).
				Str("remote_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("http_request")

			return nil
		}
	}
}
