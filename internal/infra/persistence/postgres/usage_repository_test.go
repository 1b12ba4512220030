package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"brewlog/internal/domain/entity"
	"brewlog/internal/domain/repository"
	"brewlog/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUsageKey() entity.UsageKey {
	return entity.UsageKey{
		Identity: entity.QuotaIdentity{Kind: entity.IdentityUser, Value: "0190c0de-0000-7000-8000-000000000001"},
		Day:      time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC),
	}
}

func TestUsageRepository_GetCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsageRepository(db)
	key := testUsageKey()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count FROM usage_counters")).
		WithArgs("user", key.Identity.Value, key.Day).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.GetCount(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestUsageRepository_GetCountNoRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsageRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count FROM usage_counters")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}))

	count, err := repo.GetCount(context.Background(), testUsageKey())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestUsageRepository_IncrementIfBelow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsageRepository(db)
	key := testUsageKey()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO usage_counters")+"(?s).*ON CONFLICT.*WHERE usage_counters.count < \\$5.*RETURNING count").
		WithArgs("user", key.Identity.Value, key.Day, sqlmock.AnyArg(), 3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.IncrementIfBelow(context.Background(), key, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestUsageRepository_IncrementIfBelowAtLimit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsageRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO usage_counters")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}))

	_, err := repo.IncrementIfBelow(context.Background(), testUsageKey(), 3)
	assert.ErrorIs(t, err, repository.ErrUsageLimitReached)
}

func TestUsageRepository_IncrementIfBelowNonPositiveLimit(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewUsageRepository(db)

	_, err := repo.IncrementIfBelow(context.Background(), testUsageKey(), 0)
	assert.ErrorIs(t, err, repository.ErrUsageLimitReached)
}

func TestUsageRepository_IncrementIfBelowDatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsageRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO usage_counters")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.IncrementIfBelow(context.Background(), testUsageKey(), 3)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrUsageLimitReached)
}

func TestUsageRepository_PurgeBefore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsageRepository(db)
	cutoff := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "usage_counters" WHERE day < $1`)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 4))

	removed, err := repo.PurgeBefore(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}
