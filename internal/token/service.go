package token

import (
	"context"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrZeroAddress   = errors.New("recipient must not be the zero address")
	// ErrInvalidRange is returned by History when from is after to.
	ErrInvalidRange = errors.New("start of the range must not be after its end")
)

const maxAmountBits = 256

// Service mints and reads AssetToken balances on chain.
type Service interface {
	// Mint creates amount base units for recipient and waits until the transaction is mined.
	Mint(ctx context.Context, recipient common.Address, amount *big.Int) (*TxResult, error)
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
	// Transfer moves amount base units from one account to another and waits until the
	// transaction is mined. Transfers from other accounts than the signer need an allowance.
	Transfer(ctx context.Context, from common.Address, to common.Address, amount *big.Int) (*TxResult, error)
	// History returns the Transfer events of blocks mined in [from, to).
	History(ctx context.Context, from time.Time, to time.Time) ([]HistoryEntry, error)
	// Healthy reports whether the chain node is reachable.
	Healthy(ctx context.Context) error
}

// TxResult is the outcome of a mined transaction.
type TxResult struct {
	TxHash      common.Hash
	Status      uint64
	BlockNumber *big.Int
}

func (r *TxResult) Succeeded() bool {
	return r.Status == types.ReceiptStatusSuccessful
}

type Options struct {
	// GasLimit of 0 lets the node estimate the gas of every mint.
	GasLimit uint64
	Wait     WaitOptions
	// BlockBatchSize limits the block range of a single eth_getLogs call, 0 uses defaultBlockBatchSize.
	BlockBatchSize uint64
}

type service struct {
	backend  Backend
	contract *Contract
	address  common.Address
	signer   *Signer
	opts     Options

	// sendMu serializes nonce lookup and sending so parallel mints don't reuse a nonce.
	sendMu sync.Mutex
}

// NewService creates the token service for the contract deployed at contractAddress.
//
//nolint:ireturn // Returning interface is intentional
func NewService(backend Backend, contractAddress common.Address, signer *Signer, opts Options) (Service, error) {
	contract, err := NewContract()
	if err != nil {
		return nil, err
	}

	return &service{
		backend:  backend,
		contract: contract,
		address:  contractAddress,
		signer:   signer,
		opts:     opts,
	}, nil
}

func (s *service) Mint(ctx context.Context, recipient common.Address, amount *big.Int) (*TxResult, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	if recipient == (common.Address{}) {
		return nil, ErrZeroAddress
	}

	data, err := s.contract.PackMint(recipient, amount)
	if err != nil {
		return nil, err
	}

	tx, err := s.send(ctx, data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send mint transaction")
	}

	receipt, err := waitMined(ctx, s.backend, tx.Hash(), s.opts.Wait)
	if err != nil {
		return nil, err
	}

	result := &TxResult{
		TxHash:      tx.Hash(),
		Status:      receipt.Status,
		BlockNumber: receipt.BlockNumber,
	}

	log.Info().
		Str("tx_hash", result.TxHash.Hex()).
		Str("recipient", recipient.Hex()).
		Str("amount", amount.String()).
		Bool("succeeded", result.Succeeded()).
		Msg("Mint transaction mined")

	return result, nil
}

func (s *service) Transfer(ctx context.Context, from common.Address, to common.Address, amount *big.Int) (*TxResult, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	if from == (common.Address{}) || to == (common.Address{}) {
		return nil, ErrZeroAddress
	}

	var (
		data []byte
		err  error
	)
	if from == s.signer.Address() {
		data, err = s.contract.PackTransfer(to, amount)
	} else {
		data, err = s.contract.PackTransferFrom(from, to, amount)
	}
	if err != nil {
		return nil, err
	}

	tx, err := s.send(ctx, data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send transfer transaction")
	}

	receipt, err := waitMined(ctx, s.backend, tx.Hash(), s.opts.Wait)
	if err != nil {
		return nil, err
	}

	result := &TxResult{
		TxHash:      tx.Hash(),
		Status:      receipt.Status,
		BlockNumber: receipt.BlockNumber,
	}

	log.Info().
		Str("tx_hash", result.TxHash.Hex()).
		Str("from", from.Hex()).
		Str("to", to.Hex()).
		Str("amount", amount.String()).
		Bool("succeeded", result.Succeeded()).
		Msg("Transfer transaction mined")

	return result, nil
}

func (s *service) send(ctx context.Context, data []byte) (*types.Transaction, error) {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	return sendTx(ctx, s.backend, s.signer, &s.address, data, s.opts.GasLimit)
}

func (s *service) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	data, err := s.contract.PackBalanceOf(account)
	if err != nil {
		return nil, err
	}

	resp, err := s.backend.CallContract(ctx, ethereum.CallMsg{
		To:   &s.address,
		Data: data,
	}, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call balanceOf")
	}

	return s.contract.UnpackBalanceOf(resp)
}

func (s *service) Healthy(ctx context.Context) error {
	if _, err := s.backend.ChainID(ctx); err != nil {
		return errors.Wrap(err, "chain node unavailable")
	}

	return nil
}

// ParseAmount parses a positive decimal integer of base units that fits into an uint256.
func ParseAmount(raw string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok || amount.Sign() <= 0 || amount.BitLen() > maxAmountBits {
		return nil, ErrInvalidAmount
	}

	return amount, nil
}
