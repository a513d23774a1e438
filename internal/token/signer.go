package token

import (
	"crypto/ecdsa"
	"math/big"
	"strings"

	"github.com/assettoken/asset-token/internal/config"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
)

const (
	bip44Purpose = 44
	coinTypeETH  = 60
)

// Signer signs transactions for a single account.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

func NewSigner(key *ecdsa.PrivateKey) *Signer {
	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// NewSignerFromHex accepts a hex private key with or without 0x prefix.
func NewSignerFromHex(hexKey string) (*Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse private key")
	}

	return NewSigner(key), nil
}

// NewSignerFromSeed derives the account at m/44'/60'/0'/0/<index> from a BIP32 seed.
func NewSignerFromSeed(seed []byte, index uint32) (*Signer, error) {
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	path := []uint32{
		bip32.FirstHardenedChild + bip44Purpose,
		bip32.FirstHardenedChild + coinTypeETH,
		bip32.FirstHardenedChild + 0,
		0,
		index,
	}

	key := master
	for _, child := range path {
		key, err = key.NewChildKey(child)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key %d", child)
		}
	}

	ecdsaKey, err := crypto.ToECDSA(key.Key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert derived key to ECDSA")
	}

	return NewSigner(ecdsaKey), nil
}

// NewSignerFromConfig prefers the raw private key over the seed.
func NewSignerFromConfig(cfg config.Chain) (*Signer, error) {
	if len(cfg.MinterPrivateKey) > 0 {
		return NewSignerFromHex(cfg.MinterPrivateKey)
	}

	if len(cfg.MinterSeed) > 0 {
		seed, err := hexutil.Decode(ensureHexPrefix(strings.TrimSpace(cfg.MinterSeed)))
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode minter seed")
		}
		return NewSignerFromSeed(seed, cfg.MinterAccountIndex)
	}

	return nil, errors.New("no minter key configured")
}

func (s *Signer) Address() common.Address {
	return s.address
}

// SignTx signs an EIP-1559 transaction for the given chain.
func (s *Signer) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signedTx, err := types.SignTx(tx, types.NewLondonSigner(chainID), s.key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}

	return signedTx, nil
}

func ensureHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return "0x" + s[2:]
	}
	return "0x" + s
}
