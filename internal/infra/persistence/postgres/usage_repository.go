package postgres

import (
	"context"
	"time"

	"brewlog/internal/domain/entity"
	"brewlog/internal/domain/repository"
	"brewlog/internal/errors"
	"brewlog/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const selectUsageCountSQL = `SELECT count FROM usage_counters
WHERE identity_kind = @kind AND identity_value = @value AND day = @day`

// incrementUsageSQL inserts the first use of the day or bumps an existing counter,
// but only while it is below the limit. No returned row means the limit was reached.
const incrementUsageSQL = `INSERT INTO usage_counters (identity_kind, identity_value, day, count, updated_at)
VALUES (@kind, @value, @day, 1, @now)
ON CONFLICT (identity_kind, identity_value, day)
DO UPDATE SET count = usage_counters.count + 1, updated_at = EXCLUDED.updated_at
WHERE usage_counters.count < @limit
RETURNING count`

// usageRepository implements the repository.UsageRepository interface.
type usageRepository struct {
	db *gorm.DB
}

// NewUsageRepository is the constructor for usageRepository.
func NewUsageRepository(db *gorm.DB) repository.UsageRepository {
	return &usageRepository{
		db: db,
	}
}

// GetCount returns the counter for a key, or zero when no row exists yet.
func (repo *usageRepository) GetCount(ctx context.Context, key entity.UsageKey) (int, error) {
	var counts []int

	if err := repo.db.WithContext(ctx).
		Raw(selectUsageCountSQL, usageKeyArgs(key)).
		Scan(&counts).Error; err != nil {
		return 0, errors.Wrap(err, "failed to read usage counter")
	}

	if len(counts) == 0 {
		return 0, nil
	}

	return counts[0], nil
}

// IncrementIfBelow runs the conditional upsert in a single statement.
func (repo *usageRepository) IncrementIfBelow(ctx context.Context, key entity.UsageKey, limit int) (int, error) {
	if limit <= 0 {
		return 0, repository.ErrUsageLimitReached
	}

	args := usageKeyArgs(key)
	args["now"] = time.Now().UTC()
	args["limit"] = limit

	var counts []int
	if err := repo.db.WithContext(ctx).
		Raw(incrementUsageSQL, args).
		Scan(&counts).Error; err != nil {
		return 0, errors.Wrap(err, "failed to increment usage counter")
	}

	if len(counts) == 0 {
		return 0, repository.ErrUsageLimitReached
	}

	return counts[0], nil
}

// PurgeBefore deletes counters for days strictly before cutoff.
func (repo *usageRepository) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("day < ?", cutoff).
		Delete(&model.UsageCounterModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge usage counters")
	}

	return result.RowsAffected, nil
}

func usageKeyArgs(key entity.UsageKey) map[string]any {
	return map[string]any{
		"kind":  string(key.Identity.Kind),
		"value": key.Identity.Value,
		"day":   key.Day,
	}
}
