package test

import (
	"context"
	"testing"
	"time"

	"github.com/assettoken/asset-token/internal/api"
	"github.com/assettoken/asset-token/internal/api/router"
	"github.com/assettoken/asset-token/internal/config"
	"github.com/assettoken/asset-token/internal/token"
)

// WithTestServer returns a fully configured server backed by a FakeToken service.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, config.DefaultServiceConfigFromEnv(), closure)
}

// WithTestServerConfigurable returns a fully configured server using the given config.
func WithTestServerConfigurable(t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerWithToken(t, config, NewFakeToken(), closure)
}

// WithTestServerWithToken returns a fully configured server using the given token service.
func WithTestServerWithToken(t *testing.T, config config.Server, tokenService token.Service, closure func(s *api.Server)) {
	t.Helper()

	s := newTestServer(t, config, tokenService)

	closure(s)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		t.Fatalf("Failed to shutdown server: %v", errs)
	}
}

func newTestServer(t *testing.T, config config.Server, tokenService token.Service) *api.Server {
	t.Helper()

	// https://stackoverflow.com/questions/43424787/how-to-use-next-available-port-in-http-listenandserve
	// You may use port 0 to indicate you're not specifying an exact port but you want a free, available port selected by the system
	config.Echo.ListenAddress = ":0"

	s, err := api.InitNewServerWithTokenService(config, tokenService)
	if err != nil {
		t.Fatalf("Failed to init server: %v", err)
	}

	if err := router.Init(s); err != nil {
		t.Fatalf("Failed to init router: %v", err)
	}

	return s
}
