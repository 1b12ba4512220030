// Package context carries request-scoped state from the delivery layer to the services.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from incoming requests and echoed on every response.
const HeaderXRequestID = "X-Request-Id"

const (
	echoKeyRequestID   = "request_id"
	maxRequestIDLength = 64
)

type scopeKey struct{}

type scope struct {
	requestID string
	logger    *slog.Logger
}

// NormalizeRequestID keeps a client-supplied ID only when it is short and made of
// [A-Za-z0-9._-]; anything else is replaced by a fresh UUID so it cannot forge log lines.
func NormalizeRequestID(raw string) string {
	if raw == "" || len(raw) > maxRequestIDLength {
		return uuid.NewString()
	}

	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return uuid.NewString()
		}
	}

	return raw
}

// Attach returns ctx carrying requestID and a child of base tagged with it.
func Attach(ctx context.Context, requestID string, base *slog.Logger) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope{
		requestID: requestID,
		logger:    base.With(slog.String("request_id", requestID)),
	})
}

// RequestIDFromContext returns the request ID attached to ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s.requestID
}

// LoggerOrDefault returns the request logger attached to ctx, or fallback.
func LoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if s, ok := ctx.Value(scopeKey{}).(scope); ok && s.logger != nil {
		return s.logger
	}

	return fallback
}

// SetRequestID records the request ID on the echo context for response envelopes.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestID returns the request ID of c, falling back to the request context.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	return RequestIDFromContext(c.Request().Context())
}
