package client

import (
	"bytes"
	"encoding/json"
)

// MintRequest is sent as JSON body of POST /mint. Values are passed through unvalidated.
type MintRequest struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

type MintResponse struct {
	TxHash string `json:"tx_hash"`
}

// BalanceQuery is sent as query of GET /balance.
type BalanceQuery struct {
	Address string
}

type BalanceResponse struct {
	Balance Quantity `json:"balance"`
}

// Quantity is a token amount as reported by the backend. Backends send it either as
// JSON string or JSON number, the textual representation is kept as-is.
type Quantity string

func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*q = Quantity(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*q = Quantity(n.String())

	return nil
}

func (q Quantity) String() string {
	return string(q)
}
