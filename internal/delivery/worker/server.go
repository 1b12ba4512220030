package worker

import (
	"log/slog"
	"net/http"

	"brewlog/config"
	"brewlog/internal/delivery"
	"brewlog/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UsageRetentionPath is the push target for externally scheduled retention sweeps.
const UsageRetentionPath = "/tasks/usage-retention"

type ServerParams struct {
	fx.In

	Lc               fx.Lifecycle
	Cfg              *config.Config
	Logger           *slog.Logger
	RetentionHandler *handler.RetentionHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv, err := delivery.NewEchoServer("worker", params.Lc, params.Cfg, params.Logger)
	if err != nil {
		return nil, err
	}
	e := srv.Echo()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST(UsageRetentionPath, params.RetentionHandler.HandleUsageRetention)

	return srv, nil
}
