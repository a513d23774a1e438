package token_test

import (
	"bytes"
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

var balanceOfSelector = common.FromHex("70a08231")

// fakeBackend is an in-memory chain that mines every sent transaction after pendingPolls
// receipt lookups.
type fakeBackend struct {
	mu sync.Mutex

	chainID       *big.Int
	nonce         uint64
	tipCap        *big.Int
	baseFee       *big.Int
	estimatedGas  uint64
	receiptStatus uint64
	pendingPolls  int
	balances      map[common.Address]*big.Int
	chainErr      error
	receiptLogs   []*types.Log
	// blockTimes[n] is the timestamp of block n, the chain head is the last block.
	blockTimes []uint64
	logs       []types.Log

	sent          []*types.Transaction
	estimateCalls int
	receiptCalls  int
	logQueries    []ethereum.FilterQuery
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		chainID:       big.NewInt(1337),
		nonce:         7,
		tipCap:        big.NewInt(1_000_000_000),
		baseFee:       big.NewInt(2_000_000_000),
		estimatedGas:  51_234,
		receiptStatus: types.ReceiptStatusSuccessful,
		balances:      map[common.Address]*big.Int{},
	}
}

func (b *fakeBackend) ChainID(_ context.Context) (*big.Int, error) {
	if b.chainErr != nil {
		return nil, b.chainErr
	}
	return new(big.Int).Set(b.chainID), nil
}

func (b *fakeBackend) PendingNonceAt(_ context.Context, _ common.Address) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nonce + uint64(len(b.sent)), nil
}

func (b *fakeBackend) SuggestGasTipCap(_ context.Context) (*big.Int, error) {
	return new(big.Int).Set(b.tipCap), nil
}

func (b *fakeBackend) HeaderByNumber(_ context.Context, number *big.Int) (*types.Header, error) {
	if number == nil {
		return &types.Header{Number: big.NewInt(100), BaseFee: b.baseFee}, nil
	}

	n := number.Uint64()
	if n >= uint64(len(b.blockTimes)) {
		return nil, ethereum.NotFound
	}

	return &types.Header{Number: new(big.Int).Set(number), Time: b.blockTimes[n], BaseFee: b.baseFee}, nil
}

func (b *fakeBackend) BlockNumber(_ context.Context) (uint64, error) {
	if b.chainErr != nil {
		return 0, b.chainErr
	}
	if len(b.blockTimes) == 0 {
		return 100, nil
	}
	return uint64(len(b.blockTimes) - 1), nil
}

func (b *fakeBackend) FilterLogs(_ context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logQueries = append(b.logQueries, query)

	var res []types.Log
	for _, l := range b.logs {
		if l.BlockNumber < query.FromBlock.Uint64() || l.BlockNumber > query.ToBlock.Uint64() {
			continue
		}
		if len(query.Addresses) > 0 && l.Address != query.Addresses[0] {
			continue
		}
		res = append(res, l)
	}

	return res, nil
}

func (b *fakeBackend) EstimateGas(_ context.Context, _ ethereum.CallMsg) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.estimateCalls++
	return b.estimatedGas, nil
}

func (b *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, tx)
	return nil
}

func (b *fakeBackend) TransactionReceipt(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.receiptCalls++

	if b.pendingPolls > 0 {
		b.pendingPolls--
		return nil, errors.Wrap(ethereum.NotFound, "failed to get transaction receipt")
	}

	for _, tx := range b.sent {
		if tx.Hash() != txHash {
			continue
		}

		receipt := &types.Receipt{
			Status:      b.receiptStatus,
			TxHash:      txHash,
			BlockNumber: big.NewInt(101),
			GasUsed:     b.estimatedGas,
			Logs:        b.receiptLogs,
		}
		if tx.To() == nil {
			from, err := types.Sender(types.LatestSignerForChainID(b.chainID), tx)
			if err != nil {
				return nil, err
			}
			receipt.ContractAddress = crypto.CreateAddress(from, tx.Nonce())
		}
		return receipt, nil
	}

	return nil, ethereum.NotFound
}

func (b *fakeBackend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if len(msg.Data) != 4+32 || !bytes.Equal(msg.Data[:4], balanceOfSelector) {
		return nil, errors.New("execution reverted")
	}

	account := common.BytesToAddress(msg.Data[4:])
	balance, ok := b.balances[account]
	if !ok {
		balance = big.NewInt(0)
	}

	return common.LeftPadBytes(balance.Bytes(), 32), nil
}

func (b *fakeBackend) sentTransactions() []*types.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*types.Transaction(nil), b.sent...)
}
