package token

import (
	"fmt"

	"github.com/assettoken/asset-token/internal/config"
	"github.com/assettoken/asset-token/internal/token"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newReceipt() *cobra.Command {
	return &cobra.Command{
		Use:   "receipt <tx_hash>",
		Short: "Shows the receipt and the minted tokens of a transaction",
		Long: `Reads the receipt of a transaction from the chain node (SERVER_CHAIN_RPC_URLS)
and prints its status and the ERC-20 transfers it emitted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hexutil.Decode(args[0])
			if err != nil || len(raw) != common.HashLength {
				return errors.Errorf("invalid transaction hash %q", args[0])
			}

			cfg := config.DefaultServiceConfigFromEnv()

			rpc, err := token.NewRPCClient(cfg.Chain.RPCURLs)
			if err != nil {
				return err
			}
			defer rpc.Close()

			info, err := token.LookupReceipt(cmd.Context(), rpc, common.BytesToHash(raw))
			if err != nil {
				return err
			}

			printReceipt(cmd, info)

			return nil
		},
	}
}

func printReceipt(cmd *cobra.Command, info *token.ReceiptInfo) {
	out := cmd.OutOrStdout()

	status := "success"
	if !info.Succeeded() {
		status = "failed"
	}

	fmt.Fprintf(out, "Transaction Hash: %s\n", info.TxHash.Hex())
	fmt.Fprintf(out, "Status: %s\n", status)
	fmt.Fprintf(out, "Block Number: %s\n", info.BlockNumber)
	fmt.Fprintf(out, "Gas Used: %d\n", info.GasUsed)
	if info.ContractAddress != (common.Address{}) {
		fmt.Fprintf(out, "Contract Created: %s\n", info.ContractAddress.Hex())
	}

	for i, t := range info.Transfers {
		kind := "Transfer"
		if t.IsMint() {
			kind = "Mint"
		}
		fmt.Fprintf(out, "  #%d %s: %s -> %s amount %s (token %s)\n", i, kind, t.From.Hex(), t.To.Hex(), t.Amount, t.Token.Hex())
	}
}
