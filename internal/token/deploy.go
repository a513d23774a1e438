package token

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// DeployParams are the AssetToken constructor arguments.
type DeployParams struct {
	Name          string
	Symbol        string
	InitialSupply *big.Int
	GasLimit      uint64
}

type DeployResult struct {
	Address     common.Address
	TxHash      common.Hash
	BlockNumber *big.Int
}

// ParseBytecode decodes the hex creation bytecode as written by solc (--bin), with or without 0x.
func ParseBytecode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, errors.New("bytecode is empty")
	}

	code, err := hexutil.Decode(ensureHexPrefix(s))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode bytecode")
	}
	if len(code) == 0 {
		return nil, errors.New("bytecode is empty")
	}

	return code, nil
}

// Deploy creates a new AssetToken contract and waits for it to be mined.
func Deploy(ctx context.Context, backend Backend, signer *Signer, bytecode []byte, params DeployParams, wait WaitOptions) (*DeployResult, error) {
	if params.InitialSupply == nil || params.InitialSupply.Sign() < 0 {
		return nil, errors.New("initial supply must not be negative")
	}

	contract, err := NewContract()
	if err != nil {
		return nil, err
	}

	args, err := contract.PackConstructor(params.Name, params.Symbol, params.InitialSupply)
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, len(bytecode)+len(args))
	data = append(data, bytecode...)
	data = append(data, args...)

	tx, err := sendTx(ctx, backend, signer, nil, data, params.GasLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send deployment transaction")
	}

	log.Info().
		Str("tx_hash", tx.Hash().Hex()).
		Str("name", params.Name).
		Str("symbol", params.Symbol).
		Str("initial_supply", params.InitialSupply.String()).
		Msg("Deployment transaction sent, waiting to be mined")

	receipt, err := waitMined(ctx, backend, tx.Hash(), wait)
	if err != nil {
		return nil, err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, errors.Errorf("deployment transaction %s reverted", tx.Hash().Hex())
	}

	return &DeployResult{
		Address:     receipt.ContractAddress,
		TxHash:      tx.Hash(),
		BlockNumber: receipt.BlockNumber,
	}, nil
}
