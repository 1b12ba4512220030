// Command migrate brings the gateway schema up to date and exits.
package main

import (
	"context"
	"log/slog"

	"brewlog/config"
	"brewlog/internal/errors"
	logs "brewlog/internal/infra/log"
	"brewlog/internal/infra/persistence/model"
	"brewlog/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(
			runMigrations,
		),
	).Run()
}

// runMigrations applies the schema once the database is reachable, then stops the app.
func runMigrations(lc fx.Lifecycle, shutdowner fx.Shutdowner, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.WithContext(ctx).AutoMigrate(model.Tables()...); err != nil {
				return errors.Wrap(err, "failed to migrate schema")
			}
			logger.Info("Schema migrated", slog.Int("tables", len(model.Tables())))

			return shutdowner.Shutdown()
		},
	})
}
