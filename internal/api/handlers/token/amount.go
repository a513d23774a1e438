package token

import (
	"encoding/json"
	"math/big"

	"github.com/assettoken/asset-token/internal/token"
)

// parseAmount accepts a positive integer in base units, sent either as JSON number or numeric string.
func parseAmount(v interface{}) (*big.Int, bool) {
	var s string
	switch a := v.(type) {
	case json.Number:
		s = a.String()
	case string:
		s = a
	default:
		return nil, false
	}

	amount, err := token.ParseAmount(s)
	if err != nil {
		return nil, false
	}

	return amount, true
}
