package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"brewlog/config"
	domainerrors "brewlog/internal/domain/errors"
	mockUsecase "brewlog/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newSchedulerConfig(enabled bool, schedule string) *config.Config {
	cfg := &config.Config{Worker: &config.WorkerConfig{EnableScheduler: enabled}}
	cfg.Quota.Timezone = "UTC"
	cfg.Quota.SweepSchedule = schedule

	return cfg
}

func TestNewScheduler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("disabled", func(t *testing.T) {
		s, err := NewScheduler(SchedulerParams{
			Lc:          fxtest.NewLifecycle(t),
			Cfg:         newSchedulerConfig(false, "@daily"),
			Logger:      logger,
			RetentionUC: mockUsecase.NewMockRetentionUsecase(t),
		})
		require.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("invalid schedule", func(t *testing.T) {
		_, err := NewScheduler(SchedulerParams{
			Lc:          fxtest.NewLifecycle(t),
			Cfg:         newSchedulerConfig(true, "every full moon"),
			Logger:      logger,
			RetentionUC: mockUsecase.NewMockRetentionUsecase(t),
		})
		assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
	})

	t.Run("starts and stops with the app", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		s, err := NewScheduler(SchedulerParams{
			Lc:          lc,
			Cfg:         newSchedulerConfig(true, "@daily"),
			Logger:      logger,
			RetentionUC: mockUsecase.NewMockRetentionUsecase(t),
		})
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Len(t, s.cron.Entries(), 1)

		lc.RequireStart()
		lc.RequireStop()
	})
}

func TestScheduler_RunRetention(t *testing.T) {
	retentionUC := mockUsecase.NewMockRetentionUsecase(t)
	retentionUC.EXPECT().
		PurgeExpiredUsage(mock.MatchedBy(func(ctx context.Context) bool {
			_, hasDeadline := ctx.Deadline()

			return hasDeadline
		})).
		Return(int64(3), nil)

	s := &Scheduler{
		retentionUC: retentionUC,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	s.runRetention()
}
