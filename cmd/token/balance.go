package token

import (
	"github.com/assettoken/asset-token/internal/frontend"
	"github.com/spf13/cobra"
)

func newBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [address]",
		Short: "Reads a token balance through the token backend",
		Long:  `Sends exactly one GET /balance request to the token backend and prints the balance.`,
		Args:  cobra.MaximumNArgs(1),
	}
	addClientFlags(cmd)
	cmd.Flags().String(flagAddress, "", "wallet address to query")

	v := newViper(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		output := v.GetString(flagOutput)
		if err := validateOutput(output); err != nil {
			return err
		}

		c, err := newConsole(v)
		if err != nil {
			return err
		}

		form := &frontend.BalanceForm{
			Address: v.GetString(flagAddress),
		}
		if len(args) > 0 {
			form.Address = args[0]
		}

		c.SubmitBalance(cmd.Context(), form, c.translations.ParseLanguage(v.GetString(flagLanguage)))

		return printResult(cmd, output, form, form.Result)
	}

	return cmd
}
