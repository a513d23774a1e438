//go:build wireinject

package api

import (
	"github.com/assettoken/asset-token/internal/config"
	"github.com/assettoken/asset-token/internal/metrics"
	"github.com/assettoken/asset-token/internal/token"
	"github.com/google/wire"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// chainSet groups the providers required to talk to the AssetToken contract on a real node.
var chainSet = wire.NewSet(
	NewRPCClient,
	wire.Bind(new(token.Backend), new(*token.RPCClient)),
	NewSigner,
	NewTokenService,
)

// InitNewServer returns a new Server instance connected to the configured chain.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(newServerWithRPC, chainSet, metrics.New)
	return new(Server), nil
}

// InitNewServerWithTokenService returns a new Server instance using the given token service.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithTokenService(
	_ config.Server,
	_ token.Service,
) (*Server, error) {
	wire.Build(newServerWithComponents, metrics.New)
	return new(Server), nil
}
