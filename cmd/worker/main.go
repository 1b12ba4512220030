// Command worker runs the quota retention sweep, either on its own cron
// schedule or when an external scheduler pushes to it.
package main

import (
	"context"

	"brewlog/config"
	"brewlog/internal/delivery"
	"brewlog/internal/delivery/worker"
	"brewlog/internal/delivery/worker/handler"
	logs "brewlog/internal/infra/log"
	"brewlog/internal/infra/persistence/postgres"
	"brewlog/internal/infra/quota"
	"brewlog/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			quota.NewUsageRepository,
			quota.NewLedger,
			impl.NewRetentionService,
			handler.NewRetentionHandler,
			worker.NewScheduler,
		),
		delivery.Provide(worker.NewServer),
		fx.Invoke(
			// Requesting the scheduler is what registers its hooks; nil when disabled.
			func(*worker.Scheduler) {},
			delivery.Launch,
		),
	).Run()
}
