package token

import (
	"github.com/assettoken/asset-token/internal/frontend"
	"github.com/spf13/cobra"
)

func newMint() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint [recipient] [amount]",
		Short: "Mints tokens through the token backend",
		Long: `Sends exactly one POST /mint request to the token backend and prints the transaction hash.

Recipient and amount are sent as given, the backend validates them.`,
		Args: cobra.MaximumNArgs(2),
	}
	addClientFlags(cmd)
	cmd.Flags().String(flagRecipient, "", "address receiving the minted tokens")
	cmd.Flags().String(flagAmount, "", "amount of token base units to mint")

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

		form := &frontend.MintForm{
			Recipient: v.GetString(flagRecipient),
			Amount:    v.GetString(flagAmount),
		}
		if len(args) > 0 {
			form.Recipient = args[0]
		}
		if len(args) > 1 {
			form.Amount = args[1]
		}

		c.SubmitMint(cmd.Context(), form, c.translations.ParseLanguage(v.GetString(flagLanguage)))

		return printResult(cmd, output, form, form.Result)
	}

	return cmd
}
