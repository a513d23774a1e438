package util

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/assettoken/asset-token/internal/api/httperrors"
	"github.com/assettoken/asset-token/internal/types"
	oerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
)

// BindAndValidateBody decodes the JSON request body into v and validates it.
// Numbers are kept as json.Number so large token amounts survive decoding.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	log := LogFromContext(c.Request().Context())

	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		log.Debug().Err(err).Msg("Failed to decode request body")
		bindErr := *httperrors.ErrBadRequestMalformedBody
		bindErr.Internal = err
		return &bindErr
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates the response payload before sending it, a failing
// validation is treated as a server error.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		LogFromContext(c.Request().Context()).Error().Err(err).Msg("Response payload failed validation")
		return err
	}

	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	err := v.Validate(strfmt.Default)
	if err == nil {
		return nil
	}

	LogFromContext(c.Request().Context()).Debug().Err(err).Msg("Request payload failed validation")

	var details []*types.HTTPValidationErrorDetail

	var compositeErr *oerrors.CompositeError
	if errors.As(err, &compositeErr) {
		details = formatValidationErrors(compositeErr.Errors)
	} else {
		details = formatValidationErrors([]error{err})
	}

	valErr := httperrors.NewHTTPValidationError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), details)
	valErr.Internal = err

	return valErr
}

func formatValidationErrors(errs []error) []*types.HTTPValidationErrorDetail {
	res := make([]*types.HTTPValidationErrorDetail, 0, len(errs))

	for _, e := range errs {
		var valErr *oerrors.Validation
		if errors.As(e, &valErr) {
			res = append(res, &types.HTTPValidationErrorDetail{
				Key:   swag.String(valErr.Name),
				In:    swag.String(valErr.In),
				Error: swag.String(valErr.Error()),
			})
			continue
		}

		var compositeErr *oerrors.CompositeError
		if errors.As(e, &compositeErr) {
			res = append(res, formatValidationErrors(compositeErr.Errors)...)
			continue
		}

		res = append(res, &types.HTTPValidationErrorDetail{
			Key:   swag.String("body"),
			In:    swag.String("body"),
			Error: swag.String(e.Error()),
		})
	}

	return res
}

// BindAndValidateQueryParams binds the query parameters of the request into v and validates it.
func BindAndValidateQueryParams(c echo.Context, v runtime.Validatable) error {
	binder := &echo.DefaultBinder{}

	if err := binder.BindQueryParams(c, v); err != nil {
		LogFromContext(c.Request().Context()).Debug().Err(err).Msg("Failed to bind query parameters")
		return err
	}

	return validatePayload(c, v)
}
