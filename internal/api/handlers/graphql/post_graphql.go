package graphql

import (
	"net/http"

	"github.com/assettoken/asset-token/internal/api"
	"github.com/assettoken/asset-token/internal/api/httperrors"
	"github.com/assettoken/asset-token/internal/util"
	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

func PostGraphQLRoute(s *api.Server) *echo.Route {
	return s.Router.Root.POST("/graphql", postGraphQLHandler(s))
}

func postGraphQLHandler(s *api.Server) echo.HandlerFunc {
	schema, err := newSchema(s)
	if err != nil {
		// the schema is static, failing here is a programming error
		log.Panic().Err(err).Msg("Failed to build GraphQL schema")
	}

	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req request
		if err := c.Bind(&req); err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Msg("Failed to bind GraphQL request")
			return httperrors.ErrBadRequestMalformedBody
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        ctx,
		})
		if result.HasErrors() {
			util.LogFromContext(ctx).Debug().Interface("errors", result.Errors).Msg("GraphQL request returned errors")
		}

		return c.JSON(http.StatusOK, result)
	}
}
