package test

import (
	"net/http/httptest"
	"testing"

	"github.com/assettoken/asset-token/internal/api/httperrors"
	"github.com/stretchr/testify/require"
)

// RequireHTTPError checks that res carries the public part of httpErr.
func RequireHTTPError(t *testing.T, res *httptest.ResponseRecorder, httpErr *httperrors.HTTPError) httperrors.HTTPError {
	t.Helper()

	var response httperrors.HTTPError
	ParseResponseBody(t, res, &response)

	require.Equal(t, int(*httpErr.Code), res.Result().StatusCode)
	require.Equal(t, *httpErr.Code, *response.Code)
	require.Equal(t, *httpErr.Type, *response.Type)
	require.Equal(t, *httpErr.Title, *response.Title)

	return response
}
