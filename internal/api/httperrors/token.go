package httperrors

import (
	"net/http"

	"github.com/assettoken/asset-token/internal/types"
)

var (
	ErrBadRequestInvalidAddress = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDADDRESS, "Invalid Ethereum address")
	ErrBadRequestInvalidAmount  = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDAMOUNT, "Invalid amount")
	ErrBadRequestMalformedBody  = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Malformed request body")
	ErrBadRequestInvalidDate    = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDDATE, "Invalid date, expected YYYY-MM-DD")
	ErrBadRequestInvalidRange   = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDDATE, "start_date must not be after end_date")
	ErrServiceUnavailableChain  = NewHTTPError(http.StatusServiceUnavailable, types.PublicHTTPErrorTypeCHAINUNAVAILABLE, "Chain node unavailable")
)
