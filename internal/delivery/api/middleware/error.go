package middleware

import (
	"log/slog"
	"net/http"

	"brewlog/internal/delivery/api/response"
	deliverycontext "brewlog/internal/delivery/context"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware is the API's echo.HTTPErrorHandler. It is the one place
// server-side failures are logged.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		appErr  domainerrors.AppError
		httpErr *echo.HTTPError
	)
	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, err, slog.String("code", appErr.ErrorCode()))
		}
		_ = response.AppError(c, appErr)

	case errors.As(err, &httpErr):
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

	default:
		// The cause stays in the log; the client only sees the generic envelope.
		m.logFailure(c, err, slog.String("code", domainerrors.ErrInternalError.ErrorCode()))
		_ = response.AppError(c, domainerrors.ErrInternalError)
	}
}

func (m *ErrorMiddleware) logFailure(c echo.Context, err error, attrs ...any) {
	req := c.Request()
	attrs = append(attrs,
		slog.Any("error", err),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
	)

	deliverycontext.LoggerOrDefault(req.Context(), m.logger).Error("Request failed", attrs...)
}
