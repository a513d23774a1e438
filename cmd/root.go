package cmd

import (
	"fmt"
	"os"

	"github.com/assettoken/asset-token/cmd/deploy"
	"github.com/assettoken/asset-token/cmd/env"
	"github.com/assettoken/asset-token/cmd/probe"
	"github.com/assettoken/asset-token/cmd/server"
	"github.com/assettoken/asset-token/cmd/token"
	"github.com/assettoken/asset-token/cmd/web"
	"github.com/assettoken/asset-token/internal/config"
	"github.com/assettoken/asset-token/internal/util/command"
	"github.com/spf13/cobra"
)

const envFileFlag = "env-file"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "app",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

Mints AssetToken (AST) and reads balances through a small token gateway.
Ships the gateway, a browser console and CLI clients.
Requires configuration through ENV or an .env file.`, config.ModuleName),
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		envFile, err := cmd.Flags().GetString(envFileFlag)
		if err != nil {
			return err
		}

		if err := command.LoadDotEnv(envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}

		command.ConfigureLogger(config.DefaultServiceConfigFromEnv().Logger)

		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	rootCmd.PersistentFlags().String(envFileFlag, ".env", "env file loaded before the configuration is read")

	// attach the subcommands
	rootCmd.AddCommand(
		deploy.New(),
		env.New(),
		probe.New(),
		server.New(),
		token.New(),
		web.New(),
	)

	if code := command.ExitCode(rootCmd.Execute()); code != 0 {
		os.Exit(code)
	}
}
