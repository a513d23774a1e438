package token

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// assetTokenABI covers the parts of the AssetToken contract used by the gateway and the deployer:
// constructor(string name, string symbol, uint256 initialSupply)
// mint(address to, uint256 amount)    -> 0x40c10f19
// balanceOf(address account)          -> 0x70a08231
// transfer(address to, uint256 amount) -> 0xa9059cbb
// transferFrom(address from, address to, uint256 amount) -> 0x23b872dd
const assetTokenABI = `[
	{"type":"constructor","stateMutability":"nonpayable","inputs":[
		{"name":"name","type":"string"},
		{"name":"symbol","type":"string"},
		{"name":"initialSupply","type":"uint256"}
	]},
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[
		{"name":"to","type":"address"},
		{"name":"amount","type":"uint256"}
	],"outputs":[]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[
		{"name":"account","type":"address"}
	],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[
		{"name":"to","type":"address"},
		{"name":"amount","type":"uint256"}
	],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[
		{"name":"from","type":"address"},
		{"name":"to","type":"address"},
		{"name":"amount","type":"uint256"}
	],"outputs":[{"name":"","type":"bool"}]}
]`

const (
	methodMint         = "mint"
	methodBalanceOf    = "balanceOf"
	methodTransfer     = "transfer"
	methodTransferFrom = "transferFrom"
)

// Contract packs and unpacks AssetToken calls.
type Contract struct {
	abi abi.ABI
}

func NewContract() (*Contract, error) {
	parsed, err := abi.JSON(strings.NewReader(assetTokenABI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse AssetToken ABI")
	}

	return &Contract{abi: parsed}, nil
}

func (c *Contract) PackMint(to common.Address, amount *big.Int) ([]byte, error) {
	data, err := c.abi.Pack(methodMint, to, amount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack mint call")
	}

	return data, nil
}

func (c *Contract) PackBalanceOf(account common.Address) ([]byte, error) {
	data, err := c.abi.Pack(methodBalanceOf, account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack balanceOf call")
	}

	return data, nil
}

func (c *Contract) PackTransfer(to common.Address, amount *big.Int) ([]byte, error) {
	data, err := c.abi.Pack(methodTransfer, to, amount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack transfer call")
	}

	return data, nil
}

func (c *Contract) PackTransferFrom(from common.Address, to common.Address, amount *big.Int) ([]byte, error) {
	data, err := c.abi.Pack(methodTransferFrom, from, to, amount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack transferFrom call")
	}

	return data, nil
}

func (c *Contract) UnpackBalanceOf(data []byte) (*big.Int, error) {
	out, err := c.abi.Unpack(methodBalanceOf, data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unpack balanceOf result")
	}

	if len(out) != 1 {
		return nil, errors.Errorf("unexpected balanceOf result length %d", len(out))
	}

	balance, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.Errorf("unexpected balanceOf result type %T", out[0])
	}

	return balance, nil
}

// PackConstructor returns the ABI encoded constructor arguments that follow the creation bytecode.
func (c *Contract) PackConstructor(name string, symbol string, initialSupply *big.Int) ([]byte, error) {
	data, err := c.abi.Pack("", name, symbol, initialSupply)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack constructor arguments")
	}

	return data, nil
}
