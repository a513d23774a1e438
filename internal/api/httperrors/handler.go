package httperrors

import (
	"errors"
	"net/http"

	"github.com/assettoken/asset-token/internal/types"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// HTTPErrorHandler renders every error returned by a handler as a public HTTP error.
// Details of unknown errors are hidden unless hideInternalDetails is false.
func HTTPErrorHandler(hideInternalDetails bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		logger := zerolog.Ctx(c.Request().Context())
		if logger.GetLevel() == zerolog.Disabled {
			logger = &log.Logger
		}

		var (
			httpErr       *HTTPError
			validationErr *HTTPValidationError
			echoErr       *echo.HTTPError
		)

		var (
			code    int
			payload interface{}
		)

		switch {
		case errors.As(err, &validationErr):
			code = int(*validationErr.Code)
			payload = validationErr
		case errors.As(err, &httpErr):
			code = int(*httpErr.Code)
			payload = httpErr
		case errors.As(err, &echoErr):
			code = echoErr.Code
			payload = NewFromEcho(echoErr)
		default:
			code = http.StatusInternalServerError
			unknown := NewHTTPError(code, types.PublicHTTPErrorTypeGeneric, http.StatusText(code))
			if !hideInternalDetails {
				unknown.Detail = err.Error()
			}
			payload = unknown
		}

		if code >= http.StatusInternalServerError {
			logger.Error().Err(err).Int("status", code).Msg("Request failed with server error")
		} else {
			logger.Debug().Err(err).Int("status", code).Msg("Request failed")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, payload)
		}
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to write error response")
		}
	}
}
