package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"brewlog/config"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/lifecycle"
	"brewlog/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the gateway's primary store. Credentials, analysis history and
// (by default) quota counters all live behind the returned handle.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, domainerrors.ErrConfiguration.WrapMessage("postgres section is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open gateway store")
	}
	// Multi-statement work goes through TransactionManager; single writes need no implicit tx.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to unwrap gateway store handle")
	}

	stopSampling := func() {}
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "gateway store unreachable")
			}
			params.Logger.Info("Gateway store connected",
				slog.Int("max_open_conns", sqlDB.Stats().MaxOpenConnections),
			)

			samplingCtx, cancelSampling := context.WithCancel(context.Background())
			stopSampling = cancelSampling
			go samplePool(samplingCtx, params.Logger, sqlDB, poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopSampling()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// samplePool reports connection-pool contention between ticks until ctx ends.
func samplePool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current := sqlDB.Stats()
			if level, attrs, contended := poolContention(last, current); contended {
				logger.LogAttrs(ctx, level, "Gateway store pool contention", attrs...)
			}
			last = current
		}
	}
}

// poolContention compares two pool snapshots. It reports false when no
// caller had to wait for a connection in between.
func poolContention(last, current sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := current.WaitCount - last.WaitCount
	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}

	waited := current.WaitDuration - last.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("in_use", current.InUse),
		slog.Int("idle", current.Idle),
		slog.Int("max_open_conns", current.MaxOpenConnections),
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	return level, attrs, true
}
