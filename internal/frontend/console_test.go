package frontend_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/assettoken/asset-token/internal/client"
	"github.com/assettoken/asset-token/internal/config"
	"github.com/assettoken/asset-token/internal/frontend"
	"github.com/assettoken/asset-token/internal/i18n"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newConsole(t *testing.T, handler http.HandlerFunc) *frontend.Console {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return newConsoleForURL(t, srv.URL)
}

func newConsoleForURL(t *testing.T, baseURL string) *frontend.Console {
	t.Helper()

	c, err := client.New(config.Client{BaseURL: baseURL})
	require.NoError(t, err)

	translator, err := i18n.New(config.I18n{DefaultLanguage: language.English})
	require.NoError(t, err)

	return frontend.NewConsole(c, c, translator)
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestSubmitMintSuccess(t *testing.T) {
	console := newConsole(t, respond(http.StatusOK, `{"tx_hash":"0xabc123"}`))

	form := &frontend.MintForm{Recipient: "0x216a4A64E1e699F9d65Dd9CbD0058dAB21DeF002", Amount: "1000"}
	console.SubmitMint(t.Context(), form, language.English)

	assert.Equal(t, frontend.StateSuccess, form.Result.State)
	assert.Equal(t, "Transaction Hash: 0xabc123", form.Result.Message)
	assert.Equal(t, "0xabc123", form.Result.Value)
	assert.Equal(t, "0x216a4A64E1e699F9d65Dd9CbD0058dAB21DeF002", form.Recipient)
	assert.Equal(t, "1000", form.Amount)
}

func TestSubmitBalanceSuccess(t *testing.T) {
	tests := []struct {
		body     string
		expected string
	}{
		{body: `{"balance":"500"}`, expected: "Balance: 500"},
		{body: `{"balance":500}`, expected: "Balance: 500"},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			console := newConsole(t, respond(http.StatusOK, tt.body))

			form := &frontend.BalanceForm{Address: "0x216a4A64E1e699F9d65Dd9CbD0058dAB21DeF002"}
			console.SubmitBalance(t.Context(), form, language.English)

			assert.True(t, form.Result.Succeeded())
			assert.Equal(t, tt.expected, form.Result.Message)
			assert.Equal(t, "500", form.Result.Value)
			assert.Equal(t, "0x216a4A64E1e699F9d65Dd9CbD0058dAB21DeF002", form.Address)
		})
	}
}

func TestSubmitTranslatesMessages(t *testing.T) {
	console := newConsole(t, respond(http.StatusOK, `{"tx_hash":"0xabc","balance":"3"}`))

	mint := &frontend.MintForm{}
	console.SubmitMint(t.Context(), mint, language.German)
	assert.Equal(t, "Transaktions-Hash: 0xabc", mint.Result.Message)

	balance := &frontend.BalanceForm{}
	console.SubmitBalance(t.Context(), balance, language.German)
	assert.Equal(t, "Kontostand: 3", balance.Result.Message)
}

func TestSubmitFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{
			name:    "backend error message",
			status:  http.StatusBadRequest,
			body:    `{"error":"Invalid Ethereum address"}`,
			message: "The token backend rejected the request (HTTP 400): Invalid Ethereum address",
		},
		{
			name:    "status without message",
			status:  http.StatusInternalServerError,
			body:    "",
			message: "The token backend rejected the request (HTTP 500).",
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			body:    "<html></html>",
			message: "The token backend sent a response that is not valid JSON.",
		},
		{
			name:    "missing tx_hash",
			status:  http.StatusOK,
			body:    `{"transaction_hash":"0xabc"}`,
			message: "The token backend response did not contain \"tx_hash\".",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console := newConsole(t, respond(tt.status, tt.body))

			form := &frontend.MintForm{Recipient: "0x01", Amount: "1"}
			console.SubmitMint(t.Context(), form, language.English)

			assert.True(t, form.Result.Failed())
			assert.Equal(t, tt.message, form.Result.Message)
			assert.Empty(t, form.Result.Value)
			assert.Equal(t, "0x01", form.Recipient)
			assert.Equal(t, "1", form.Amount)
		})
	}
}

func TestSubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	console := newConsoleForURL(t, baseURL)

	form := &frontend.BalanceForm{Address: "0x01"}
	console.SubmitBalance(t.Context(), form, language.English)

	assert.True(t, form.Result.Failed())
	assert.Contains(t, form.Result.Message, "Could not reach the token backend: ")
}

func TestResultReplacesPreviousResult(t *testing.T) {
	var fail atomic.Bool
	console := newConsole(t, func(w http.ResponseWriter, _ *http.Request) {
		if fail.Load() {
			respond(http.StatusBadRequest, `{"error":"Invalid amount"}`)(w, nil)
			return
		}
		respond(http.StatusOK, `{"tx_hash":"0xabc"}`)(w, nil)
	})

	form := &frontend.MintForm{Recipient: "0x01", Amount: "1"}
	console.SubmitMint(t.Context(), form, language.English)
	require.True(t, form.Result.Succeeded())

	fail.Store(true)
	console.SubmitMint(t.Context(), form, language.English)
	assert.True(t, form.Result.Failed())
	assert.Empty(t, form.Result.Value)

	fail.Store(false)
	console.SubmitMint(t.Context(), form, language.English)
	assert.True(t, form.Result.Succeeded())
	assert.Equal(t, "Transaction Hash: 0xabc", form.Result.Message)
}

type staticTranslator struct{}

func (staticTranslator) Translate(key string, _ language.Tag, _ ...i18n.Data) string {
	return key
}

type failingMinter struct{}

func (failingMinter) Mint(_ context.Context, _ client.MintRequest) (*client.MintResponse, error) {
	return nil, errors.New("boom")
}

func TestSubmitUnknownError(t *testing.T) {
	console := frontend.NewConsole(failingMinter{}, nil, staticTranslator{})

	form := &frontend.MintForm{}
	console.SubmitMint(t.Context(), form, language.English)

	assert.True(t, form.Result.Failed())
	assert.Equal(t, "ErrorUnknown", form.Result.Message)
}

func TestFormsStartIdle(t *testing.T) {
	var mint frontend.MintForm
	var balance frontend.BalanceForm

	assert.True(t, mint.Result.Idle())
	assert.True(t, balance.Result.Idle())
}

func TestStateText(t *testing.T) {
	tests := map[frontend.State]string{
		frontend.StateIdle:    "idle",
		frontend.StateSuccess: "success",
		frontend.StateFailure: "failure",
	}

	for s, expected := range tests {
		b, err := s.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, expected, string(b))
	}
}
