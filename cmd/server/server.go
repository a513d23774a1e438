package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/assettoken/asset-token/internal/api"
	"github.com/assettoken/asset-token/internal/api/router"
	"github.com/assettoken/asset-token/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Starts the token gateway",
		Long: `Starts the token gateway serving POST /mint and GET /balance.

Requires the RPC URLs, the AssetToken contract address and the minter key
(SERVER_CHAIN_MINTER_PRIVATE_KEY or SERVER_CHAIN_MINTER_SEED).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(ctx context.Context) error {
	cfg := config.DefaultServiceConfigFromEnv()

	if err := cfg.ValidateGateway(); err != nil {
		return err
	}

	s, err := api.InitNewServer(cfg)
	if err != nil {
		return err
	}

	if err := router.Init(s); err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("listen_address", cfg.Echo.ListenAddress).Str("contract", cfg.Chain.ContractAddress).Msg("Starting token gateway")

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

	if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
