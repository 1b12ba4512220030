package service

import (
	"context"

	"brewlog/internal/domain/entity"
)

// QuotaLedger meters house-blend analyses per identity per day.
type QuotaLedger interface {
	// IdentityFor derives the quota identity of a caller. Raw addresses never leave this call.
	IdentityFor(caller entity.Caller) entity.QuotaIdentity

	// CheckUsage reports current usage without changing it.
	CheckUsage(ctx context.Context, identity entity.QuotaIdentity) (entity.UsageSnapshot, error)

	// RecordUsage counts one successful analysis, failing with ErrQuotaExceeded at the limit.
	RecordUsage(ctx context.Context, identity entity.QuotaIdentity) (entity.UsageSnapshot, error)

	// PurgeExpired removes counters for days older than retentionDays before today.
	PurgeExpired(ctx context.Context, retentionDays int) (int64, error)
}
