package token

import (
	"context"
	"math/big"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

const defaultBlockBatchSize = 2000

// HistoryEntry is a Transfer event together with the time its block was mined.
type HistoryEntry struct {
	Transfer
	Timestamp time.Time
}

func (s *service) History(ctx context.Context, from time.Time, to time.Time) ([]HistoryEntry, error) {
	if from.After(to) {
		return nil, ErrInvalidRange
	}

	latest, err := s.backend.BlockNumber(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get latest block")
	}

	headers := map[uint64]*types.Header{}
	header := func(number uint64) (*types.Header, error) {
		if h, ok := headers[number]; ok {
			return h, nil
		}
		h, err := s.backend.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get header of block %d", number)
		}
		headers[number] = h
		return h, nil
	}

	startBlock, err := firstBlockAtOrAfter(latest, from, header)
	if err != nil {
		return nil, err
	}
	endBlock, err := firstBlockAtOrAfter(latest, to, header)
	if err != nil {
		return nil, err
	}
	if startBlock >= endBlock {
		return []HistoryEntry{}, nil
	}

	batch := s.opts.BlockBatchSize
	if batch == 0 {
		batch = defaultBlockBatchSize
	}

	entries := []HistoryEntry{}
	for first := startBlock; first < endBlock; first += batch {
		last := first + batch - 1
		if last >= endBlock {
			last = endBlock - 1
		}

		logs, err := s.backend.FilterLogs(ctx, ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(first),
			ToBlock:   new(big.Int).SetUint64(last),
			Addresses: []common.Address{s.address},
			Topics:    [][]common.Hash{{TransferEventSig}},
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to filter transfer logs of blocks %d-%d", first, last)
		}

		ptrs := make([]*types.Log, 0, len(logs))
		for i := range logs {
			if logs[i].Removed {
				continue
			}
			ptrs = append(ptrs, &logs[i])
		}

		for _, t := range DecodeTransfers(ptrs) {
			h, err := header(t.BlockNumber)
			if err != nil {
				return nil, err
			}
			entries = append(entries, HistoryEntry{
				Transfer:  t,
				Timestamp: time.Unix(int64(h.Time), 0).UTC(), //nolint:gosec // block times fit into int64
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].BlockNumber != entries[j].BlockNumber {
			return entries[i].BlockNumber < entries[j].BlockNumber
		}
		return entries[i].LogIndex < entries[j].LogIndex
	})

	return entries, nil
}

// firstBlockAtOrAfter returns the lowest block in [0, latest] mined at or after t,
// or latest+1 if there is none. Block times never decrease, so a binary search suffices.
func firstBlockAtOrAfter(latest uint64, t time.Time, header func(uint64) (*types.Header, error)) (uint64, error) {
	target := t.Unix()
	lo, hi := uint64(0), latest+1

	for lo < hi {
		mid := lo + (hi-lo)/2

		h, err := header(mid)
		if err != nil {
			return 0, err
		}

		if int64(h.Time) >= target { //nolint:gosec // block times fit into int64
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo, nil
}
