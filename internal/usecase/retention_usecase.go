package usecase

import "context"

// RetentionUsecase defines the interface for periodic data retention
type RetentionUsecase interface {
	// PurgeExpiredUsage removes usage counters past the retention horizon
	PurgeExpiredUsage(ctx context.Context) (int64, error)
}
