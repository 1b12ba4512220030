package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"brewlog/config"
	"brewlog/internal/delivery/middleware"
	"brewlog/internal/domain/lifecycle"
	"brewlog/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// EchoServer is the HTTP Delivery shared by the gateway API and the worker.
// Every instance recovers panics, tags requests with an ID and writes access logs.
type EchoServer struct {
	name   string
	addr   string
	e      *echo.Echo
	h2c    *http2.Server
	logger *slog.Logger
}

type ServerOption func(*EchoServer)

// WithH2C serves cleartext HTTP/2 alongside HTTP/1.1.
func WithH2C() ServerOption {
	return func(s *EchoServer) {
		s.h2c = &http2.Server{IdleTimeout: s.e.Server.IdleTimeout}
	}
}

// NewEchoServer builds the echo instance and registers its shutdown on lc.
// Routes are added by the caller through Echo.
func NewEchoServer(name string, lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger, opts ...ServerOption) (*EchoServer, error) {
	extractIP, err := ClientIPExtractor(cfg.HTTP.TrustedProxies)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.IPExtractor = extractIP

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	// Request IDs come before access logging so every access line carries one.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
	)

	s := &EchoServer{
		name:   name,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.HTTP.Port)),
		e:      e,
		logger: logger.With(slog.String("server", name)),
	}
	for _, opt := range opts {
		opt(s)
	}

	lc.Append(fx.Hook{OnStop: s.shutdown})

	return s, nil
}

func (s *EchoServer) Echo() *echo.Echo {
	return s.e
}

// Serve blocks until the listener fails or the server is shut down.
func (s *EchoServer) Serve(context.Context) error {
	s.logger.Info("HTTP server listening", slog.String("host_port", s.addr), slog.Bool("h2c", s.h2c != nil))

	var err error
	if s.h2c != nil {
		err = s.e.StartH2CServer(s.addr, s.h2c)
	} else {
		err = s.e.Start(s.addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server stopped", s.name)
	}

	return nil
}

func (s *EchoServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("HTTP server draining")

	return errors.WithStack(s.e.Shutdown(ctx))
}
