package middleware

import (
	"log/slog"

	deliverycontext "brewlog/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware gives every request an ID and a logger carrying it.
// A well-formed client X-Request-Id is reused, anything else is replaced.
type RequestIDMiddleware struct {
	base *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{base: logger}
}

func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		id := deliverycontext.NormalizeRequestID(req.Header.Get(deliverycontext.HeaderXRequestID))

		deliverycontext.SetRequestID(c, id)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)
		c.SetRequest(req.WithContext(deliverycontext.Attach(req.Context(), id, m.base)))

		return next(c)
	}
}
