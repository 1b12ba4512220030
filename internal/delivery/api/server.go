package api

import (
	"log/slog"

	"brewlog/config"
	"brewlog/internal/delivery"
	apimiddleware "brewlog/internal/delivery/api/middleware"
	"brewlog/internal/delivery/api/router"
	"brewlog/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer assembles the public gateway API on top of the shared echo server.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv, err := delivery.NewEchoServer("api", params.Lc, params.Cfg, params.Logger, delivery.WithH2C())
	if err != nil {
		return nil, err
	}
	e := srv.Echo()

	e.Use(echomiddleware.CORS())
	// Image uploads carry their own, larger limit.
	e.Use(echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
		Limit: params.Cfg.HTTP.MaxRequestBodySize,
		Skipper: func(c echo.Context) bool {
			return c.Path() == router.ImageUploadPath
		},
	}))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return srv, nil
}
