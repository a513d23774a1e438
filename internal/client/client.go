package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/assettoken/asset-token/internal/config"
	"github.com/assettoken/asset-token/internal/util"
	"github.com/go-openapi/runtime"
	"github.com/pkg/errors"
)

const (
	OpMint    = "mint"
	OpBalance = "balance"

	maxBodySize       = 1 << 20
	maxMessageRunes   = 200
	fieldTxHash       = "tx_hash"
	fieldBalance      = "balance"
	queryParamAddress = "address"
	headerRequestID   = "X-Request-Id"
)

// Client talks to the token backend. It never retries and only times out
// when configured to, callers cancel through the context.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
}

type Option func(*Client)

// WithHTTPClient replaces the default client, which does not follow redirects.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(cfg config.Client, opts ...Option) (*Client, error) {
	baseURL, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid backend base URL %q", cfg.BaseURL)
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, errors.Errorf("backend base URL %q must be http or https", cfg.BaseURL)
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			// a redirect would turn POST /mint into a GET or send it twice
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		timeout: cfg.Timeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the backend origin the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Mint sends exactly one POST /mint request.
func (c *Client) Mint(ctx context.Context, req MintRequest) (*MintResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode mint request")
	}

	endpoint := c.baseURL.JoinPath("mint")

	var res struct {
		TxHash *string `json:"tx_hash"`
	}
	if err := c.do(ctx, OpMint, http.MethodPost, endpoint, bytes.NewReader(body), &res); err != nil {
		return nil, err
	}

	if res.TxHash == nil {
		return nil, &Error{Kind: KindMissingField, Op: OpMint, Field: fieldTxHash}
	}

	return &MintResponse{TxHash: *res.TxHash}, nil
}

// Balance sends exactly one GET /balance request, the address is query-encoded.
func (c *Client) Balance(ctx context.Context, query BalanceQuery) (*BalanceResponse, error) {
	endpoint := c.baseURL.JoinPath("balance")
	endpoint.RawQuery = url.Values{queryParamAddress: []string{query.Address}}.Encode()

	var res struct {
		Balance *Quantity `json:"balance"`
	}
	if err := c.do(ctx, OpBalance, http.MethodGet, endpoint, nil, &res); err != nil {
		return nil, err
	}

	if res.Balance == nil {
		return nil, &Error{Kind: KindMissingField, Op: OpBalance, Field: fieldBalance}
	}

	return &BalanceResponse{Balance: *res.Balance}, nil
}

func (c *Client) do(ctx context.Context, op string, method string, endpoint *url.URL, body io.Reader, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	log := util.LogFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s request", op)
	}

	req.Header.Set("Accept", runtime.JSONMime)
	if body != nil {
		req.Header.Set("Content-Type", runtime.JSONMime)
	}
	if id := util.RequestIDFromContext(ctx); len(id) > 0 {
		req.Header.Set(headerRequestID, id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("op", op).Str("url", endpoint.String()).Dur("duration", time.Since(start)).Msg("Backend request failed")
		return &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	log.Debug().
		Str("op", op).
		Str("method", method).
		Str("url", endpoint.String()).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Backend request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Kind: KindStatus, Op: op, StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindMalformed, Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	return nil
}

// errorMessage extracts a human readable message from an error response body.
func errorMessage(raw []byte) string {
	var payload struct {
		Title   string `json:"title"`
		Detail  string `json:"detail"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(raw, &payload); err == nil {
		for _, msg := range []string{payload.Title, payload.Error, payload.Message} {
			if len(msg) > 0 {
				if len(payload.Detail) > 0 {
					return msg + ": " + payload.Detail
				}
				return msg
			}
		}
	}

	msg := []rune(strings.TrimSpace(string(raw)))
	if len(msg) > maxMessageRunes {
		msg = append(msg[:maxMessageRunes], '…')
	}

	return string(msg)
}
