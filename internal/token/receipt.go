package token

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// TransferEventSig is the topic of the ERC-20 Transfer(address,address,uint256) event.
var TransferEventSig = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

type Transfer struct {
	Token       common.Address
	From        common.Address
	To          common.Address
	Amount      *big.Int
	TxHash      common.Hash
	BlockNumber uint64
	LogIndex    uint
}

// IsMint reports whether the transfer created new tokens.
func (t Transfer) IsMint() bool {
	return t.From == (common.Address{})
}

type ReceiptInfo struct {
	TxHash          common.Hash
	Status          uint64
	BlockNumber     *big.Int
	GasUsed         uint64
	ContractAddress common.Address
	Transfers       []Transfer
}

func (r *ReceiptInfo) Succeeded() bool {
	return r.Status == types.ReceiptStatusSuccessful
}

// Mints returns the transfers from the zero address.
func (r *ReceiptInfo) Mints() []Transfer {
	var res []Transfer
	for _, t := range r.Transfers {
		if t.IsMint() {
			res = append(res, t)
		}
	}

	return res
}

// LookupReceipt fetches the receipt of txHash and decodes its ERC-20 transfers.
func LookupReceipt(ctx context.Context, backend Backend, txHash common.Hash) (*ReceiptInfo, error) {
	receipt, err := backend.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get receipt of %s", txHash.Hex())
	}

	return &ReceiptInfo{
		TxHash:          txHash,
		Status:          receipt.Status,
		BlockNumber:     receipt.BlockNumber,
		GasUsed:         receipt.GasUsed,
		ContractAddress: receipt.ContractAddress,
		Transfers:       DecodeTransfers(receipt.Logs),
	}, nil
}

// DecodeTransfers picks the ERC-20 Transfer events out of logs, other logs are skipped.
func DecodeTransfers(logs []*types.Log) []Transfer {
	var res []Transfer

	for _, l := range logs {
		// ERC-721 transfers have the same signature but an indexed token id and no data
		if len(l.Topics) != 3 || l.Topics[0] != TransferEventSig || len(l.Data) != 32 {
			continue
		}

		res = append(res, Transfer{
			Token:       l.Address,
			From:        common.BytesToAddress(l.Topics[1].Bytes()),
			To:          common.BytesToAddress(l.Topics[2].Bytes()),
			Amount:      new(big.Int).SetBytes(l.Data),
			TxHash:      l.TxHash,
			BlockNumber: l.BlockNumber,
			LogIndex:    l.Index,
		})
	}

	return res
}
