package quota

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"brewlog/config"
	"brewlog/internal/domain/entity"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/repository"
	"brewlog/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/blake2b"
)

// memoryUsageRepository is an in-memory UsageRepository with the same conditional increment.
type memoryUsageRepository struct {
	mu       sync.Mutex
	counts   map[entity.UsageKey]int
	purged   time.Time
	failWith error
}

func newMemoryUsageRepository() *memoryUsageRepository {
	return &memoryUsageRepository{counts: map[entity.UsageKey]int{}}
}

func (r *memoryUsageRepository) GetCount(_ context.Context, key entity.UsageKey) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return 0, r.failWith
	}

	return r.counts[key], nil
}

func (r *memoryUsageRepository) IncrementIfBelow(_ context.Context, key entity.UsageKey, limit int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return 0, r.failWith
	}
	if r.counts[key] >= limit {
		return 0, repository.ErrUsageLimitReached
	}
	r.counts[key]++

	return r.counts[key], nil
}

func (r *memoryUsageRepository) PurgeBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purged = cutoff

	var removed int64
	for key := range r.counts {
		if key.Day.Before(cutoff) {
			delete(r.counts, key)
			removed++
		}
	}

	return removed, nil
}

func newTestLedger(t *testing.T, cfg config.QuotaConfig, repo repository.UsageRepository, now time.Time) *Ledger {
	t.Helper()

	ledger, err := newLedger(cfg, repo, nil)
	require.NoError(t, err)
	ledger.now = func() time.Time { return now }

	return ledger
}

func defaultQuotaConfig() config.QuotaConfig {
	return config.QuotaConfig{
		AnonymousDailyLimit:     3,
		AuthenticatedDailyLimit: 10,
		Timezone:                "UTC",
		AddressHashKey:          "test-hash-key",
	}
}

func TestLedger_IdentityFor(t *testing.T) {
	ledger := newTestLedger(t, defaultQuotaConfig(), newMemoryUsageRepository(), time.Now())

	userID := uuid.New()
	user := ledger.IdentityFor(entity.AuthenticatedCaller(userID, "203.0.113.7"))
	assert.Equal(t, entity.IdentityUser, user.Kind)
	assert.Equal(t, userID.String(), user.Value)

	anon := ledger.IdentityFor(entity.AnonymousCaller("203.0.113.7"))
	assert.Equal(t, entity.IdentityAddress, anon.Kind)
	assert.Len(t, anon.Value, 64)
	assert.NotContains(t, anon.Value, "203.0.113.7")
	assert.Equal(t, anon, ledger.IdentityFor(entity.AnonymousCaller("203.0.113.7")))
	assert.NotEqual(t, anon, ledger.IdentityFor(entity.AnonymousCaller("203.0.113.8")))

	otherKey := defaultQuotaConfig()
	otherKey.AddressHashKey = "another-key"
	other := newTestLedger(t, otherKey, newMemoryUsageRepository(), time.Now())
	assert.NotEqual(t, anon, other.IdentityFor(entity.AnonymousCaller("203.0.113.7")))
}

func TestLedger_RecordUsageStopsAtLimit(t *testing.T) {
	now := time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC)
	ledger := newTestLedger(t, defaultQuotaConfig(), newMemoryUsageRepository(), now)
	ctx := context.Background()
	identity := ledger.IdentityFor(entity.AnonymousCaller("198.51.100.1"))

	for i := 1; i <= 3; i++ {
		snapshot, err := ledger.RecordUsage(ctx, identity)
		require.NoError(t, err)
		assert.Equal(t, i, snapshot.Used)
		assert.Equal(t, 3-i, snapshot.Remaining)
	}

	snapshot, err := ledger.RecordUsage(ctx, identity)
	assert.ErrorIs(t, err, domainerrors.ErrQuotaExceeded)
	assert.Equal(t, 0, snapshot.Remaining)

	snapshot, err = ledger.CheckUsage(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, entity.UsageSnapshot{
		Used:      3,
		Limit:     3,
		Remaining: 0,
		ResetsAt:  time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
	}, snapshot)
}

func TestLedger_AuthenticatedLimit(t *testing.T) {
	ledger := newTestLedger(t, defaultQuotaConfig(), newMemoryUsageRepository(), time.Now())

	snapshot, err := ledger.CheckUsage(context.Background(), ledger.IdentityFor(entity.AuthenticatedCaller(uuid.New(), "")))
	require.NoError(t, err)
	assert.Equal(t, 10, snapshot.Limit)
	assert.Equal(t, 10, snapshot.Remaining)
}

func TestLedger_NonPositiveLimitDisablesTier(t *testing.T) {
	cfg := defaultQuotaConfig()
	cfg.AnonymousDailyLimit = -1
	repo := newMemoryUsageRepository()
	ledger := newTestLedger(t, cfg, repo, time.Now())

	_, err := ledger.RecordUsage(context.Background(), ledger.IdentityFor(entity.AnonymousCaller("192.0.2.1")))
	assert.ErrorIs(t, err, domainerrors.ErrQuotaExceeded)
	assert.Empty(t, repo.counts)
}

func TestLedger_DayBoundaryFollowsTimezone(t *testing.T) {
	cfg := defaultQuotaConfig()
	cfg.Timezone = "Asia/Taipei"
	repo := newMemoryUsageRepository()
	ctx := context.Background()

	// 2026-06-01 23:30 in Taipei.
	beforeMidnight := time.Date(2026, 6, 1, 15, 30, 0, 0, time.UTC)
	ledger := newTestLedger(t, cfg, repo, beforeMidnight)
	identity := ledger.IdentityFor(entity.AnonymousCaller("192.0.2.1"))

	snapshot, err := ledger.RecordUsage(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 1, 16, 0, 0, 0, time.UTC), snapshot.ResetsAt)

	ledger.now = func() time.Time { return beforeMidnight.Add(time.Hour) }
	snapshot, err = ledger.CheckUsage(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.Used)

	_, ok := repo.counts[entity.UsageKey{Identity: identity, Day: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)}]
	assert.True(t, ok)
}

func TestLedger_RepositoryFailure(t *testing.T) {
	repo := newMemoryUsageRepository()
	repo.failWith = errors.New("connection refused")
	ledger := newTestLedger(t, defaultQuotaConfig(), repo, time.Now())
	identity := ledger.IdentityFor(entity.AnonymousCaller("192.0.2.1"))

	_, err := ledger.CheckUsage(context.Background(), identity)
	assert.Error(t, err)

	_, err = ledger.RecordUsage(context.Background(), identity)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrQuotaExceeded)
}

func TestLedger_PurgeExpired(t *testing.T) {
	repo := newMemoryUsageRepository()
	now := time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC)
	ledger := newTestLedger(t, defaultQuotaConfig(), repo, now)
	identity := entity.QuotaIdentity{Kind: entity.IdentityUser, Value: "u"}

	repo.counts[entity.UsageKey{Identity: identity, Day: time.Date(2026, 5, 30, 0, 0, 0, 0, time.UTC)}] = 1
	repo.counts[entity.UsageKey{Identity: identity, Day: time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)}] = 1

	removed, err := ledger.PurgeExpired(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Equal(t, time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC), repo.purged)

	_, err = ledger.PurgeExpired(context.Background(), 0)
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
}

func TestNewLedger_InvalidConfig(t *testing.T) {
	cfg := defaultQuotaConfig()
	cfg.Timezone = "Mars/Olympus_Mons"
	_, err := newLedger(cfg, newMemoryUsageRepository(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)

	cfg = defaultQuotaConfig()
	cfg.AddressHashKey = string(make([]byte, 65))
	_, err = newLedger(cfg, newMemoryUsageRepository(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)

	cfg = defaultQuotaConfig()
	cfg.AddressHashKey = ""
	_, err = newLedger(cfg, newMemoryUsageRepository(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
}

func TestLedger_AnonymousIdentityNotRecoverableWithoutKey(t *testing.T) {
	ledger, err := newLedger(defaultQuotaConfig(), newMemoryUsageRepository(), nil)
	require.NoError(t, err)

	stored := ledger.IdentityFor(entity.AnonymousCaller("203.0.113.77")).Value
	assert.NotContains(t, stored, "203.0.113.77")

	// Hashing every address in the /24 without the key never reproduces the stored value.
	for host := 0; host < 256; host++ {
		candidate := blake2b.Sum256([]byte(fmt.Sprintf("203.0.113.%d", host)))
		assert.NotEqual(t, hex.EncodeToString(candidate[:]), stored)
	}
}

func TestNewUsageRepository_UnknownBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.Quota.Backend = "memcached"

	_, err := NewUsageRepository(BackendParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
}

func TestNewUsageRepository_RedisRequiresAddress(t *testing.T) {
	cfg := &config.Config{}
	cfg.Quota.Backend = "Redis"

	_, err := NewUsageRepository(BackendParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis.addr is required")
}
