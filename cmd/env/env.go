package env

import (
	"encoding/json"
	"fmt"

	"github.com/assettoken/asset-token/internal/config"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the env",
		Long: `Prints the effective configuration as JSON.

Secrets (minter key and seed) are never printed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printEnv(cmd)
		},
	}
}

func printEnv(cmd *cobra.Command) error {
	cfg := config.DefaultServiceConfigFromEnv()

	c, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal the env: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(c))

	return nil
}
