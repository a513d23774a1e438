package graphql

import (
	"context"
	"time"

	"github.com/assettoken/asset-token/internal/api"
	"github.com/assettoken/asset-token/internal/metrics"
	"github.com/assettoken/asset-token/internal/token"
	"github.com/assettoken/asset-token/internal/util"
	"github.com/ethereum/go-ethereum/common"
	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
)

var (
	errInvalidAddress = errors.New("invalid Ethereum address")
	errInvalidAmount  = errors.New("amount must be a positive integer")

	errChainUnavailable = errors.New("chain node unavailable")
	errInternal         = errors.New("internal server error")
)

// publicError maps a token service error to the message returned to GraphQL clients.
// Anything that is not caused by the input is logged and replaced by a generic message.
func publicError(ctx context.Context, err error, msg string) error {
	switch {
	case errors.Is(err, token.ErrZeroAddress):
		return errInvalidAddress
	case errors.Is(err, token.ErrInvalidAmount):
		return errInvalidAmount
	}

	util.LogFromContext(ctx).Error().Err(err).Msg(msg)

	if errors.Is(err, token.ErrNoRPCAvailable) {
		return errChainUnavailable
	}

	return errInternal
}

type balanceResult struct {
	WalletAddress string `json:"wallet_address"`
	Balance       string `json:"balance"`
}

type txResult struct {
	TxHash      string `json:"tx_hash"`
	Status      string `json:"status"`
	BlockNumber string `json:"block_number"`
}

func newSchema(s *api.Server) (graphql.Schema, error) {
	balanceType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Balance",
		Fields: graphql.Fields{
			"wallet_address": &graphql.Field{Type: graphql.String},
			"balance":        &graphql.Field{Type: graphql.String},
		},
	})

	txType := graphql.NewObject(graphql.ObjectConfig{
		Name: "TxResult",
		Fields: graphql.Fields{
			"tx_hash":      &graphql.Field{Type: graphql.String},
			"status":       &graphql.Field{Type: graphql.String},
			"block_number": &graphql.Field{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"balance": &graphql.Field{
				Type: balanceType,
				Args: graphql.FieldConfigArgument{
					"address": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					address, _ := p.Args["address"].(string)
					return resolveBalance(p, s, address)
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"mint": &graphql.Field{
				Type: txType,
				Args: graphql.FieldConfigArgument{
					"recipient": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
					"amount": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					recipient, _ := p.Args["recipient"].(string)
					amount, _ := p.Args["amount"].(string)
					return resolveMint(p, s, recipient, amount)
				},
			},
			"transfer": &graphql.Field{
				Type: txType,
				Args: graphql.FieldConfigArgument{
					"from": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
					"to": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
					"amount": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					from, _ := p.Args["from"].(string)
					to, _ := p.Args["to"].(string)
					amount, _ := p.Args["amount"].(string)
					return resolveTransfer(p, s, from, to, amount)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func resolveBalance(p graphql.ResolveParams, s *api.Server, address string) (*balanceResult, error) {
	if !common.IsHexAddress(address) {
		s.Metrics.ObserveBalance(metrics.OutcomeInvalidInput)
		return nil, errInvalidAddress
	}
	account := common.HexToAddress(address)

	start := time.Now()
	balance, err := s.Token.BalanceOf(p.Context, account)
	s.Metrics.ObserveChainCall("balanceOf", start)
	if err != nil {
		s.Metrics.ObserveBalance(metrics.OutcomeError)
		return nil, publicError(p.Context, err, "Failed to get token balance")
	}
	s.Metrics.ObserveBalance(metrics.OutcomeSuccess)

	return &balanceResult{
		WalletAddress: account.Hex(),
		Balance:       balance.String(),
	}, nil
}

func resolveMint(p graphql.ResolveParams, s *api.Server, recipient string, rawAmount string) (*txResult, error) {
	if !common.IsHexAddress(recipient) {
		s.Metrics.ObserveMint(metrics.OutcomeInvalidInput)
		return nil, errInvalidAddress
	}

	amount, err := token.ParseAmount(rawAmount)
	if err != nil {
		s.Metrics.ObserveMint(metrics.OutcomeInvalidInput)
		return nil, errInvalidAmount
	}

	start := time.Now()
	result, err := s.Token.Mint(p.Context, common.HexToAddress(recipient), amount)
	s.Metrics.ObserveChainCall("mint", start)
	if err != nil {
		s.Metrics.ObserveMint(errorOutcome(err))
		return nil, publicError(p.Context, err, "Failed to mint tokens")
	}

	res, outcome := newTxResult(result)
	s.Metrics.ObserveMint(outcome)

	return res, nil
}

func resolveTransfer(p graphql.ResolveParams, s *api.Server, from string, to string, rawAmount string) (*txResult, error) {
	if !common.IsHexAddress(from) || !common.IsHexAddress(to) {
		s.Metrics.ObserveTransfer(metrics.OutcomeInvalidInput)
		return nil, errInvalidAddress
	}

	amount, err := token.ParseAmount(rawAmount)
	if err != nil {
		s.Metrics.ObserveTransfer(metrics.OutcomeInvalidInput)
		return nil, errInvalidAmount
	}

	start := time.Now()
	result, err := s.Token.Transfer(p.Context, common.HexToAddress(from), common.HexToAddress(to), amount)
	s.Metrics.ObserveChainCall("transfer", start)
	if err != nil {
		s.Metrics.ObserveTransfer(errorOutcome(err))
		return nil, publicError(p.Context, err, "Failed to transfer tokens")
	}

	res, outcome := newTxResult(result)
	s.Metrics.ObserveTransfer(outcome)

	return res, nil
}

func errorOutcome(err error) string {
	if errors.Is(err, token.ErrZeroAddress) || errors.Is(err, token.ErrInvalidAmount) {
		return metrics.OutcomeInvalidInput
	}

	return metrics.OutcomeError
}

func newTxResult(result *token.TxResult) (*txResult, string) {
	res := &txResult{
		TxHash: result.TxHash.Hex(),
		Status: "success",
	}
	outcome := metrics.OutcomeSuccess
	if !result.Succeeded() {
		res.Status, outcome = "failed", metrics.OutcomeFailed
	}
	if result.BlockNumber != nil {
		res.BlockNumber = result.BlockNumber.String()
	}

	return res, outcome
}
