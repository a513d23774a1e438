package api

import (
	"github.com/assettoken/asset-token/internal/config"
	"github.com/assettoken/asset-token/internal/token"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirement for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

func NewRPCClient(cfg config.Server) (*token.RPCClient, error) {
	return token.NewRPCClient(cfg.Chain.RPCURLs)
}

func NewSigner(cfg config.Server) (*token.Signer, error) {
	return token.NewSignerFromConfig(cfg.Chain)
}

//nolint:ireturn // token.Service is the interface handlers depend on
func NewTokenService(cfg config.Server, backend token.Backend, signer *token.Signer) (token.Service, error) {
	if !common.IsHexAddress(cfg.Chain.ContractAddress) {
		return nil, errors.Errorf("invalid contract address %q", cfg.Chain.ContractAddress)
	}

	return token.NewService(backend, common.HexToAddress(cfg.Chain.ContractAddress), signer, token.Options{
		GasLimit:       cfg.Chain.GasLimit,
		BlockBatchSize: cfg.Chain.BlockBatchSize,
		Wait: token.WaitOptions{
			PollInterval: cfg.Chain.ReceiptPollInterval,
			Timeout:      cfg.Chain.ReceiptTimeout,
		},
	})
}
