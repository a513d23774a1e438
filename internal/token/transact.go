package token

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	// maxFeePerGas = tip + baseFeeMultiplier * baseFee, survives a few full blocks
	baseFeeMultiplier = 2

	DefaultReceiptPollInterval = time.Second
)

// WaitOptions controls how long we wait for a transaction to be mined.
type WaitOptions struct {
	PollInterval time.Duration
	// Timeout of 0 waits until ctx is done.
	Timeout time.Duration
}

// sendTx builds, signs and sends an EIP-1559 transaction from signer.
// A nil to creates a contract. A gasLimit of 0 estimates the gas.
func sendTx(ctx context.Context, backend Backend, signer *Signer, to *common.Address, data []byte, gasLimit uint64) (*types.Transaction, error) {
	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chain ID")
	}

	nonce, err := backend.PendingNonceAt(ctx, signer.Address())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get nonce")
	}

	tipCap, err := backend.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get gas tip cap")
	}

	head, err := backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get latest header")
	}

	feeCap := new(big.Int).Set(tipCap)
	if head.BaseFee != nil {
		feeCap.Add(feeCap, new(big.Int).Mul(head.BaseFee, big.NewInt(baseFeeMultiplier)))
	}

	if gasLimit == 0 {
		gasLimit, err = backend.EstimateGas(ctx, ethereum.CallMsg{
			From:      signer.Address(),
			To:        to,
			GasTipCap: tipCap,
			GasFeeCap: feeCap,
			Data:      data,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to estimate gas")
		}
	}

	//nolint:varnamelen // tx is a common abbreviation for transaction
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Gas:       gasLimit,
		To:        to,
		Value:     big.NewInt(0),
		Data:      data,
	})

	signedTx, err := signer.SignTx(tx, chainID)
	if err != nil {
		return nil, err
	}

	if err := backend.SendTransaction(ctx, signedTx); err != nil {
		return nil, errors.Wrap(err, "failed to send transaction")
	}

	log.Debug().
		Str("tx_hash", signedTx.Hash().Hex()).
		Uint64("nonce", nonce).
		Uint64("gas", gasLimit).
		Str("chain_id", chainID.String()).
		Msg("Transaction sent")

	return signedTx, nil
}

// waitMined polls for the receipt of txHash until it is available or the wait times out.
func waitMined(ctx context.Context, backend Backend, txHash common.Hash, opts WaitOptions) (*types.Receipt, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultReceiptPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		receipt, err := backend.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}

		if err != nil && !errors.Is(err, ethereum.NotFound) {
			log.Warn().Err(err).Str("tx_hash", txHash.Hex()).Msg("Failed to get transaction receipt, retrying")
		}

		select {
		case <-ctx.Done():
			return nil, errors.Wrapf(ctx.Err(), "transaction %s not mined", txHash.Hex())
		case <-ticker.C:
		}
	}
}
