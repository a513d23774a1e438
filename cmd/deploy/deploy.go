package deploy

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/assettoken/asset-token/internal/config"
	"github.com/assettoken/asset-token/internal/token"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	flagBytecodeFile  = "bytecode-file"
	flagName          = "name"
	flagSymbol        = "symbol"
	flagInitialSupply = "initial-supply"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploys the AssetToken contract",
		Long: `Deploys the AssetToken contract from its compiled creation bytecode and prints its address.

The deployer is the minter key (SERVER_CHAIN_MINTER_PRIVATE_KEY or SERVER_CHAIN_MINTER_SEED).
Without one the private key is read from the terminal.`,
		Args: cobra.NoArgs,
		RunE: runDeploy,
	}

	cmd.Flags().String(flagBytecodeFile, "", "hex encoded creation bytecode as written by solc --bin (default DEPLOY_BYTECODE_FILE)")
	cmd.Flags().String(flagName, "", "token name (default DEPLOY_TOKEN_NAME)")
	cmd.Flags().String(flagSymbol, "", "token symbol (default DEPLOY_TOKEN_SYMBOL)")
	cmd.Flags().String(flagInitialSupply, "", "initial supply in base units minted to the deployer (default DEPLOY_TOKEN_INITIAL_SUPPLY)")

	return cmd
}

func runDeploy(cmd *cobra.Command, _ []string) error {
	cfg := config.DefaultServiceConfigFromEnv()

	overrides := map[string]*string{
		flagBytecodeFile:  &cfg.Deploy.BytecodeFile,
		flagName:          &cfg.Deploy.Name,
		flagSymbol:        &cfg.Deploy.Symbol,
		flagInitialSupply: &cfg.Deploy.InitialSupply,
	}
	for flag, target := range overrides {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		v, err := cmd.Flags().GetString(flag)
		if err != nil {
			return err
		}
		*target = v
	}

	raw, err := os.ReadFile(cfg.Deploy.BytecodeFile)
	if err != nil {
		return errors.Wrapf(err, "failed to read bytecode file %s", cfg.Deploy.BytecodeFile)
	}

	bytecode, err := token.ParseBytecode(string(raw))
	if err != nil {
		return err
	}

	initialSupply, ok := new(big.Int).SetString(strings.TrimSpace(cfg.Deploy.InitialSupply), 10)
	if !ok {
		return errors.Errorf("invalid initial supply %q", cfg.Deploy.InitialSupply)
	}

	signer, err := deployer(cmd, cfg.Chain)
	if err != nil {
		return err
	}

	rpc, err := token.NewRPCClient(cfg.Chain.RPCURLs)
	if err != nil {
		return err
	}
	defer rpc.Close()

	log.Info().Str("deployer", signer.Address().Hex()).Str("name", cfg.Deploy.Name).Str("symbol", cfg.Deploy.Symbol).Msg("Deploying AssetToken")

	res, err := token.Deploy(cmd.Context(), rpc, signer, bytecode, token.DeployParams{
		Name:          cfg.Deploy.Name,
		Symbol:        cfg.Deploy.Symbol,
		InitialSupply: initialSupply,
		GasLimit:      cfg.Chain.GasLimit,
	}, token.WaitOptions{
		PollInterval: cfg.Chain.ReceiptPollInterval,
		Timeout:      cfg.Chain.ReceiptTimeout,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Contract Address: %s\n", res.Address.Hex())
	fmt.Fprintf(out, "Transaction Hash: %s\n", res.TxHash.Hex())
	fmt.Fprintf(out, "Block Number: %s\n", res.BlockNumber)
	fmt.Fprintf(out, "\nSERVER_CHAIN_CONTRACT_ADDRESS=%s\n", res.Address.Hex())

	return nil
}

// deployer uses the configured minter key and falls back to prompting for a private key.
func deployer(cmd *cobra.Command, cfg config.Chain) (*token.Signer, error) {
	if len(cfg.MinterPrivateKey) > 0 || len(cfg.MinterSeed) > 0 {
		return token.NewSignerFromConfig(cfg)
	}

	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit into int
	if !term.IsTerminal(fd) {
		return nil, errors.New("no minter key configured and stdin is not a terminal")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Deployer private key: ")
	key, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return nil, errors.Wrap(err, "failed to read private key")
	}

	return token.NewSignerFromHex(strings.TrimSpace(string(key)))
}
