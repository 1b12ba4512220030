package impl

import (
	"context"
	"log/slog"

	"brewlog/config"
	deliverycontext "brewlog/internal/delivery/context"
	"brewlog/internal/domain/service"
	"brewlog/internal/errors"
	"brewlog/internal/usecase"
)

type retentionService struct {
	ledger        service.QuotaLedger
	retentionDays int
	logger        *slog.Logger
}

// NewRetentionService creates a new retention service instance
func NewRetentionService(ledger service.QuotaLedger, cfg *config.Config, logger *slog.Logger) usecase.RetentionUsecase {
	return &retentionService{
		ledger:        ledger,
		retentionDays: cfg.Quota.RetentionDays,
		logger:        logger,
	}
}

// PurgeExpiredUsage removes usage counters older than the configured retention.
func (s *retentionService) PurgeExpiredUsage(ctx context.Context) (int64, error) {
	removed, err := s.ledger.PurgeExpired(ctx, s.retentionDays)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge usage counters")
	}

	deliverycontext.LoggerOrDefault(ctx, s.logger).Info("Usage counters purged",
		slog.Int64("removed", removed),
		slog.Int("retention_days", s.retentionDays),
	)

	return removed, nil
}
