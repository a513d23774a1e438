package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/assettoken/asset-token/internal/api/httperrors"
	"github.com/assettoken/asset-token/internal/api/middleware"
	"github.com/assettoken/asset-token/internal/config"
	"github.com/assettoken/asset-token/internal/frontend"
	"github.com/assettoken/asset-token/internal/i18n"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

// Server serves the browser console, a single page with the mint and the balance form.
type Server struct {
	Echo    *echo.Echo
	Config  config.Server
	Console *frontend.Console
	I18n    *i18n.Service
}

func New(cfg config.Server, console *frontend.Console, translations *i18n.Service) (*Server, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Echo:    echo.New(),
		Config:  cfg,
		Console: console,
		I18n:    translations,
	}

	s.Echo.Debug = cfg.Web.Debug
	s.Echo.HideBanner = true
	s.Echo.Renderer = r
	s.Echo.HTTPErrorHandler = httperrors.HTTPErrorHandler(!cfg.Web.Debug)

	s.Echo.Use(echoMiddleware.Recover())
	s.Echo.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.Echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Level:     cfg.Logger.RequestLevel,
		LogCaller: cfg.Logger.LogCaller,
	}))
	s.Echo.Use(s.languageMiddleware)

	s.Echo.GET("/", s.getIndexHandler)
	s.Echo.POST("/mint", s.postMintHandler)
	s.Echo.POST("/balance", s.postBalanceHandler)
	s.Echo.GET("/-/healthy", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy.")
	})

	return s, nil
}

func (s *Server) Start() error {
	log.Info().Str("listen_address", s.Config.Web.ListenAddress).Msg("Starting web console")

	if err := s.Echo.Start(s.Config.Web.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Warn().Msg("Shutting down web console")

	if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
