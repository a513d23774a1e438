package util

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	CTXKeyRequestID contextKey = "request_id"
	CTXKeyLanguage  contextKey = "language"
)

// RequestIDFromContext returns the ID of the request or an empty string if none is set.
func RequestIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(CTXKeyRequestID).(string)
	if !ok {
		return ""
	}

	return id
}

// LogFromContext returns the request-specific zerolog instance stored in ctx by the logger
// middleware, carrying the request ID. Without one the global logger is returned, so the result
// is always a usable logger.
func LogFromContext(ctx context.Context) *zerolog.Logger {
	l := log.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		l = &log.Logger
	}

	return l
}
