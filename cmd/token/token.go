package token

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/assettoken/asset-token/internal/client"
	"github.com/assettoken/asset-token/internal/config"
	"github.com/assettoken/asset-token/internal/frontend"
	"github.com/assettoken/asset-token/internal/i18n"
	"github.com/assettoken/asset-token/internal/util/command"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "TOKEN"

	flagBackendURL = "backend-url"
	flagTimeout    = "client-timeout"
	flagLanguage   = "lang"
	flagOutput     = "output"
	flagRecipient  = "recipient"
	flagAmount     = "amount"
	flagAddress    = "address"

	outputText  = "text"
	outputValue = "value"
	outputJSON  = "json"
)

var errSubmitFailed = errors.Wrap(command.ErrAlreadyReported, "request failed")

func New() *cobra.Command {
	return command.NewSubcommandGroup("token",
		newMint(),
		newBalance(),
		newReceipt(),
	)
}

// newViper binds the flags of cmd to a fresh viper instance, every flag can also be set
// through TOKEN_<FLAG> (e.g. TOKEN_BACKEND_URL).
func newViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}

	return v
}

func addClientFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagBackendURL, "", "base URL of the token backend (default "+config.DefaultBackendBaseURL+")")
	cmd.Flags().Duration(flagTimeout, 0, "timeout of the backend call, 0 waits until interrupted")
	cmd.Flags().String(flagLanguage, "", "language of the printed messages (en, de)")
	cmd.Flags().StringP(flagOutput, "o", outputText, "output format: text, value or json")
}

type console struct {
	*frontend.Console
	translations *i18n.Service
	cfg          config.Server
}

// newConsole builds the console from the env config, overridden by flags and TOKEN_ variables.
func newConsole(v *viper.Viper) (*console, error) {
	cfg := config.DefaultServiceConfigFromEnv()

	v.SetDefault(flagBackendURL, cfg.Client.BaseURL)
	v.SetDefault(flagTimeout, cfg.Client.Timeout)
	v.SetDefault(flagLanguage, cfg.I18n.DefaultLanguage.String())

	cfg.Client.BaseURL = v.GetString(flagBackendURL)
	cfg.Client.Timeout = v.GetDuration(flagTimeout)

	c, err := client.New(cfg.Client)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.New(cfg.I18n)
	if err != nil {
		return nil, err
	}

	return &console{
		Console:      frontend.NewConsole(c, c, translations),
		translations: translations,
		cfg:          cfg,
	}, nil
}

// printResult writes a successful result to stdout and a failure to stderr.
// Failures return errSubmitFailed so the process exits non-zero.
func printResult(cmd *cobra.Command, output string, form interface{}, result frontend.Display) error {
	if result.Failed() {
		fmt.Fprintln(cmd.ErrOrStderr(), result.Message)
	}

	switch output {
	case outputJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(form); err != nil {
			return errors.Wrap(err, "failed to encode result")
		}
	case outputValue:
		if result.Succeeded() {
			fmt.Fprintln(cmd.OutOrStdout(), result.Value)
		}
	default:
		if result.Succeeded() {
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		}
	}

	if result.Failed() {
		return errSubmitFailed
	}

	return nil
}

func validateOutput(output string) error {
	switch output {
	case outputText, outputValue, outputJSON:
		return nil
	default:
		return errors.Errorf("unknown output format %q", output)
	}
}
