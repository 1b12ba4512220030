package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"brewlog/config"
	deliverycontext "brewlog/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access line per request. Outside debug mode
// only server errors are written.
type LoggerMiddleware struct {
	logger  *slog.Logger
	logAll  bool
	elapsed func(time.Time) time.Duration
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:  logger,
		logAll:  config.Env.Debug,
		elapsed: time.Since,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Commit the error body now so the logged status matches the response.
			c.Error(err)
		}

		status := c.Response().Status
		if m.logAll || status >= http.StatusInternalServerError {
			m.write(c, status, m.elapsed(start), err)
		}

		return err
	}
}

// write logs the matched route template rather than the raw path so
// analysis IDs and image refs stay out of the access log.
func (m *LoggerMiddleware) write(c echo.Context, status int, latency time.Duration, err error) {
	req := c.Request()
	logger := deliverycontext.LoggerOrDefault(req.Context(), m.logger)

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Duration("latency", latency),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	logger.LogAttrs(req.Context(), accessLevel(status), "Request served", attrs...)
}

func accessLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
