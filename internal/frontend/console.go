package frontend

import (
	"context"
	"strconv"

	"github.com/assettoken/asset-token/internal/client"
	"github.com/assettoken/asset-token/internal/i18n"
	"github.com/assettoken/asset-token/internal/util"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

const (
	msgMintSuccess          = "MintSuccess"
	msgBalanceSuccess       = "BalanceSuccess"
	msgErrorNetwork         = "ErrorNetwork"
	msgErrorStatus          = "ErrorStatus"
	msgErrorStatusNoMessage = "ErrorStatusNoMessage"
	msgErrorMalformed       = "ErrorMalformed"
	msgErrorMissingField    = "ErrorMissingField"
	msgErrorUnknown         = "ErrorUnknown"
)

type Minter interface {
	Mint(ctx context.Context, req client.MintRequest) (*client.MintResponse, error)
}

type BalanceChecker interface {
	Balance(ctx context.Context, query client.BalanceQuery) (*client.BalanceResponse, error)
}

type Translator interface {
	Translate(key string, lang language.Tag, data ...i18n.Data) string
}

// Console submits forms to the token backend and renders the outcome into the form's Display.
type Console struct {
	minter     Minter
	balances   BalanceChecker
	translator Translator
}

func NewConsole(minter Minter, balances BalanceChecker, translator Translator) *Console {
	return &Console{
		minter:     minter,
		balances:   balances,
		translator: translator,
	}
}

// SubmitMint sends the form inputs as they are, exactly once, and replaces form.Result.
func (c *Console) SubmitMint(ctx context.Context, form *MintForm, lang language.Tag) {
	res, err := c.minter.Mint(ctx, client.MintRequest{
		Recipient: form.Recipient,
		Amount:    form.Amount,
	})
	if err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Str("recipient", form.Recipient).Str("amount", form.Amount).Msg("Mint failed")
		form.Result = c.failure(err, lang)
		return
	}

	form.Result = Display{
		State:   StateSuccess,
		Message: c.translator.Translate(msgMintSuccess, lang, i18n.Data{"TxHash": res.TxHash}),
		Value:   res.TxHash,
	}
}

// SubmitBalance sends the address as it is, exactly once, and replaces form.Result.
func (c *Console) SubmitBalance(ctx context.Context, form *BalanceForm, lang language.Tag) {
	res, err := c.balances.Balance(ctx, client.BalanceQuery{Address: form.Address})
	if err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Str("address", form.Address).Msg("Balance lookup failed")
		form.Result = c.failure(err, lang)
		return
	}

	form.Result = Display{
		State:   StateSuccess,
		Message: c.translator.Translate(msgBalanceSuccess, lang, i18n.Data{"Balance": res.Balance.String()}),
		Value:   res.Balance.String(),
	}
}

func (c *Console) failure(err error, lang language.Tag) Display {
	return Display{
		State:   StateFailure,
		Message: c.errorMessage(err, lang),
	}
}

func (c *Console) errorMessage(err error, lang language.Tag) string {
	var clientErr *client.Error
	if !errors.As(err, &clientErr) {
		return c.translator.Translate(msgErrorUnknown, lang, i18n.Data{"Detail": err.Error()})
	}

	switch clientErr.Kind {
	case client.KindNetwork:
		detail := err.Error()
		if clientErr.Err != nil {
			detail = clientErr.Err.Error()
		}
		return c.translator.Translate(msgErrorNetwork, lang, i18n.Data{"Detail": detail})
	case client.KindStatus:
		status := strconv.Itoa(clientErr.StatusCode)
		if len(clientErr.Message) == 0 {
			return c.translator.Translate(msgErrorStatusNoMessage, lang, i18n.Data{"Status": status})
		}
		return c.translator.Translate(msgErrorStatus, lang, i18n.Data{"Status": status, "Message": clientErr.Message})
	case client.KindMalformed:
		return c.translator.Translate(msgErrorMalformed, lang)
	case client.KindMissingField:
		return c.translator.Translate(msgErrorMissingField, lang, i18n.Data{"Field": clientErr.Field})
	default:
		return c.translator.Translate(msgErrorUnknown, lang, i18n.Data{"Detail": err.Error()})
	}
}
