// Package delivery holds the entry points that expose the usecases to the outside world.
package delivery

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// Delivery is a long-running server started by a command.
type Delivery interface {
	Serve(ctx context.Context) error
}

// Provide registers a Delivery constructor in the group Launch consumes.
func Provide(constructor any) fx.Option {
	return fx.Provide(fx.Annotate(constructor, fx.ResultTags(`group:"deliveries"`)))
}

type LaunchParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Ctx        context.Context
	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Launch starts every Delivery once all other start hooks have run. If one
// of them dies the whole app is shut down so the stop hooks still execute.
func Launch(params LaunchParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go serve(params, d)
			}

			return nil
		},
	})
}

func serve(params LaunchParams, d Delivery) {
	err := d.Serve(params.Ctx)
	if err == nil {
		return
	}

	params.Logger.Error("Delivery stopped unexpectedly", slog.Any("error", err))
	if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
		params.Logger.Error("Shutdown could not be triggered", slog.Any("error", shutdownErr))
		os.Exit(1)
	}
}
