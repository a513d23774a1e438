package i18n_test

import (
	"testing"

	"github.com/assettoken/asset-token/internal/config"
	"github.com/assettoken/asset-token/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newService(t *testing.T) *i18n.Service {
	t.Helper()

	svc, err := i18n.New(config.I18n{DefaultLanguage: language.English})
	require.NoError(t, err)

	return svc
}

func TestTranslate(t *testing.T) {
	svc := newService(t)

	assert.Equal(t, "Transaction Hash: 0xabc", svc.Translate("MintSuccess", language.English, i18n.Data{"TxHash": "0xabc"}))
	assert.Equal(t, "Transaktions-Hash: 0xabc", svc.Translate("MintSuccess", language.German, i18n.Data{"TxHash": "0xabc"}))
	assert.Equal(t, "Balance: 42", svc.Translate("BalanceSuccess", language.French, i18n.Data{"Balance": "42"}))
	assert.Equal(t, "AssetToken Console", svc.Translate("PageTitle", language.English))
}

func TestTranslateUnknownKey(t *testing.T) {
	svc := newService(t)

	assert.Equal(t, "DoesNotExist", svc.Translate("DoesNotExist", language.English))
}

func TestParseAcceptLanguage(t *testing.T) {
	svc := newService(t)

	assert.Equal(t, language.German, svc.ParseAcceptLanguage("de-AT,de;q=0.9,en;q=0.8"))
	assert.Equal(t, language.English, svc.ParseAcceptLanguage("en-US,en;q=0.9"))
	assert.Equal(t, language.English, svc.ParseAcceptLanguage("ja"))
	assert.Equal(t, language.English, svc.ParseAcceptLanguage(""))
	assert.Equal(t, language.English, svc.ParseAcceptLanguage(";;;"))
}

func TestParseLanguage(t *testing.T) {
	svc := newService(t)

	assert.Equal(t, language.German, svc.ParseLanguage("de"))
	assert.Equal(t, language.English, svc.ParseLanguage("not a language"))
}
