package repository

import (
	"context"
	"time"

	"brewlog/internal/domain/entity"
	"brewlog/internal/errors"
)

// ErrUsageLimitReached is returned by IncrementIfBelow when the counter is already at the limit.
var ErrUsageLimitReached = errors.New("usage limit reached")

// UsageRepository defines the interface for per-identity daily usage counters.
type UsageRepository interface {
	// GetCount returns the counter for a key, or zero when no row exists yet.
	GetCount(ctx context.Context, key entity.UsageKey) (int, error)

	// IncrementIfBelow atomically increments the counter when it is below limit and
	// returns the new count. It returns ErrUsageLimitReached otherwise.
	IncrementIfBelow(ctx context.Context, key entity.UsageKey, limit int) (int, error)

	// PurgeBefore deletes counters for days strictly before cutoff and returns how many were removed.
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
