package worker

import (
	"context"
	"log/slog"
	"time"

	"brewlog/config"
	deliverycontext "brewlog/internal/delivery/context"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/lifecycle"
	"brewlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const retentionJobTimeout = 5 * time.Minute

// Scheduler runs the retention sweep in-process on a cron schedule.
type Scheduler struct {
	cron        *cron.Cron
	retentionUC usecase.RetentionUsecase
	logger      *slog.Logger
}

// SchedulerParams holds dependencies for the Scheduler
type SchedulerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	RetentionUC usecase.RetentionUsecase
}

// NewScheduler registers the sweep on quota.sweepSchedule, evaluated in the quota time zone.
// It returns nil when worker.enableScheduler is off.
func NewScheduler(params SchedulerParams) (*Scheduler, error) {
	if params.Cfg.Worker == nil || !params.Cfg.Worker.EnableScheduler {
		params.Logger.Info("[Worker] In-process scheduler disabled")

		return nil, nil
	}

	location, err := time.LoadLocation(params.Cfg.Quota.Timezone)
	if err != nil {
		return nil, domainerrors.ErrConfiguration.WrapMessage("quota.timezone is not a valid IANA zone")
	}

	s := &Scheduler{
		cron:        cron.New(cron.WithLocation(location)),
		retentionUC: params.RetentionUC,
		logger:      params.Logger,
	}

	if _, err := s.cron.AddFunc(params.Cfg.Quota.SweepSchedule, s.runRetention); err != nil {
		return nil, domainerrors.ErrConfiguration.WrapMessage("quota.sweepSchedule is not a valid cron spec")
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.logger.Info("[Worker] Starting scheduler", slog.String("schedule", params.Cfg.Quota.SweepSchedule))
			s.cron.Start()

			return nil
		},
		OnStop: s.stop,
	})

	return s, nil
}

func (s *Scheduler) runRetention() {
	ctx, cancel := context.WithTimeout(context.Background(), retentionJobTimeout)
	defer cancel()
	ctx = deliverycontext.Attach(ctx, "cron-"+uuid.NewString(), s.logger)

	if _, err := s.retentionUC.PurgeExpiredUsage(ctx); err != nil {
		deliverycontext.LoggerOrDefault(ctx, s.logger).Error("[Worker] Scheduled usage retention failed", slog.Any("error", err))
	}
}

// stop waits for a running sweep, bounded by the lifecycle timeout.
func (s *Scheduler) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("[Worker] Stopping scheduler")

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-shutdownCtx.Done():
		return shutdownCtx.Err()
	}
}
