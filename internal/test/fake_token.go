package test

import (
	"context"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/assettoken/asset-token/internal/token"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

type MintCall struct {
	Recipient common.Address
	Amount    *big.Int
}

type TransferCall struct {
	From   common.Address
	To     common.Address
	Amount *big.Int
}

// FakeToken is an in-memory token.Service. Every transaction is mined immediately in its own block.
type FakeToken struct {
	mu sync.Mutex

	balances  map[common.Address]*big.Int
	mints     []MintCall
	transfers []TransferCall
	history   []token.HistoryEntry
	txCount   int

	// Err is returned by every call when set.
	Err error
	// Status of the mint receipts, types.ReceiptStatusSuccessful by default.
	Status uint64
	// Now is the block time of mined transactions, time.Now by default.
	Now func() time.Time
}

var _ token.Service = (*FakeToken)(nil)

func NewFakeToken() *FakeToken {
	return &FakeToken{
		balances: map[common.Address]*big.Int{},
		Status:   types.ReceiptStatusSuccessful,
		Now:      time.Now,
	}
}

func (f *FakeToken) Mint(_ context.Context, recipient common.Address, amount *big.Int) (*token.TxResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	if amount == nil || amount.Sign() <= 0 {
		return nil, token.ErrInvalidAmount
	}
	if recipient == (common.Address{}) {
		return nil, token.ErrZeroAddress
	}

	f.mints = append(f.mints, MintCall{Recipient: recipient, Amount: new(big.Int).Set(amount)})

	return f.mine(common.Address{}, recipient, amount, f.Status), nil
}

func (f *FakeToken) Transfer(_ context.Context, from common.Address, to common.Address, amount *big.Int) (*token.TxResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	if amount == nil || amount.Sign() <= 0 {
		return nil, token.ErrInvalidAmount
	}
	if from == (common.Address{}) || to == (common.Address{}) {
		return nil, token.ErrZeroAddress
	}

	f.transfers = append(f.transfers, TransferCall{From: from, To: to, Amount: new(big.Int).Set(amount)})

	status := f.Status
	if f.balance(from).Cmp(amount) < 0 {
		status = types.ReceiptStatusFailed
	}

	return f.mine(from, to, amount, status), nil
}

// mine applies a transfer (from the zero address for mints) and records its Transfer event.
func (f *FakeToken) mine(from common.Address, to common.Address, amount *big.Int, status uint64) *token.TxResult {
	f.txCount++
	hash := FakeTxHash(f.txCount)
	block := uint64(f.txCount) //nolint:gosec // positive counter

	if status == types.ReceiptStatusSuccessful {
		if from != (common.Address{}) {
			f.balances[from] = new(big.Int).Sub(f.balance(from), amount)
		}
		f.balances[to] = new(big.Int).Add(f.balance(to), amount)

		f.history = append(f.history, token.HistoryEntry{
			Transfer: token.Transfer{
				From:        from,
				To:          to,
				Amount:      new(big.Int).Set(amount),
				TxHash:      hash,
				BlockNumber: block,
			},
			Timestamp: f.Now().UTC(),
		})
	}

	return &token.TxResult{
		TxHash:      hash,
		Status:      status,
		BlockNumber: new(big.Int).SetUint64(block),
	}
}

func (f *FakeToken) balance(account common.Address) *big.Int {
	balance, ok := f.balances[account]
	if !ok {
		return new(big.Int)
	}

	return balance
}

func (f *FakeToken) BalanceOf(_ context.Context, account common.Address) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}

	return new(big.Int).Set(f.balance(account)), nil
}

func (f *FakeToken) History(_ context.Context, from time.Time, to time.Time) ([]token.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	if from.After(to) {
		return nil, token.ErrInvalidRange
	}

	res := []token.HistoryEntry{}
	for _, e := range f.history {
		if !e.Timestamp.Before(from) && e.Timestamp.Before(to) {
			res = append(res, e)
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Timestamp.Before(res[j].Timestamp)
	})

	return res, nil
}

func (f *FakeToken) Healthy(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.Err
}

// SetBalance overrides the balance of account.
func (f *FakeToken) SetBalance(account common.Address, balance *big.Int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.balances[account] = new(big.Int).Set(balance)
}

func (f *FakeToken) SetErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Err = err
}

// AddHistory records Transfer events as if they had been mined at their Timestamp.
func (f *FakeToken) AddHistory(entries ...token.HistoryEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.history = append(f.history, entries...)
}

func (f *FakeToken) Mints() []MintCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]MintCall(nil), f.mints...)
}

func (f *FakeToken) Transfers() []TransferCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]TransferCall(nil), f.transfers...)
}

// FakeTxHash is the hash FakeToken returns for its n-th transaction, starting at 1.
func FakeTxHash(n int) common.Hash {
	return crypto.Keccak256Hash(big.NewInt(int64(n)).Bytes())
}
