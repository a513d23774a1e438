package web

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/assettoken/asset-token/internal/client"
	"github.com/assettoken/asset-token/internal/config"
	"github.com/assettoken/asset-token/internal/frontend"
	"github.com/assettoken/asset-token/internal/i18n"
	"github.com/assettoken/asset-token/internal/web"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "web",
		Short: "Starts the browser console",
		Long: `Starts the browser console with the mint and the balance form.

The console talks to the token backend at TOKEN_BACKEND_URL (default http://localhost:5000).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWeb(cmd.Context())
		},
	}
}

func runWeb(ctx context.Context) error {
	cfg := config.DefaultServiceConfigFromEnv()

	c, err := client.New(cfg.Client)
	if err != nil {
		return err
	}
	log.Info().Str("backend", c.BaseURL()).Msg("Using token backend")

	translations, err := i18n.New(cfg.I18n)
	if err != nil {
		return err
	}

	s, err := web.New(cfg, frontend.NewConsole(c, c, translations), translations)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}
