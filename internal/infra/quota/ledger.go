// Package quota meters house-blend analyses per identity per calendar day.
package quota

import (
	"context"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"brewlog/config"
	"brewlog/internal/domain/entity"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/repository"
	"brewlog/internal/domain/service"
	"brewlog/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/crypto/blake2b"
)

// Ledger implements service.QuotaLedger over a UsageRepository.
type Ledger struct {
	repo           repository.UsageRepository
	location       *time.Location
	anonymousLimit int
	userLimit      int
	addressKey     []byte
	logger         *slog.Logger
	now            func() time.Time
}

// LedgerParams holds dependencies for the ledger, injected by Fx.
type LedgerParams struct {
	fx.In

	Config *config.Config
	Repo   repository.UsageRepository
	Logger *slog.Logger
}

// NewLedger creates the quota ledger. An unknown time zone or a missing or oversized hash key is a configuration error.
func NewLedger(params LedgerParams) (service.QuotaLedger, error) {
	return newLedger(params.Config.Quota, params.Repo, params.Logger)
}

func newLedger(cfg config.QuotaConfig, repo repository.UsageRepository, logger *slog.Logger) (*Ledger, error) {
	zone := strings.TrimSpace(cfg.Timezone)
	if zone == "" {
		zone = "UTC"
	}
	location, err := time.LoadLocation(zone)
	if err != nil {
		return nil, domainerrors.ErrConfiguration.WrapMessage("quota.timezone is not a valid IANA zone")
	}

	// Without a key the IPv4 space is small enough to reverse a stored identity by enumeration.
	key := []byte(cfg.AddressHashKey)
	if len(key) == 0 {
		return nil, domainerrors.ErrConfiguration.WrapMessage("quota.addressHashKey is required")
	}
	if len(key) > blake2b.Size {
		return nil, domainerrors.ErrConfiguration.WrapMessage("quota.addressHashKey must be at most 64 bytes")
	}

	return &Ledger{
		repo:           repo,
		location:       location,
		anonymousLimit: cfg.AnonymousDailyLimit,
		userLimit:      cfg.AuthenticatedDailyLimit,
		addressKey:     key,
		logger:         logger,
		now:            time.Now,
	}, nil
}

// IdentityFor keys authenticated callers by user ID and anonymous callers by a keyed address hash.
func (l *Ledger) IdentityFor(caller entity.Caller) entity.QuotaIdentity {
	if caller.IsAuthenticated() {
		return entity.QuotaIdentity{Kind: entity.IdentityUser, Value: caller.UserID.String()}
	}

	// New256 only fails for keys longer than 64 bytes, which newLedger rejects.
	h, _ := blake2b.New256(l.addressKey)
	h.Write([]byte(strings.TrimSpace(caller.Address)))

	return entity.QuotaIdentity{Kind: entity.IdentityAddress, Value: hex.EncodeToString(h.Sum(nil))}
}

// CheckUsage reads today's counter without changing it.
func (l *Ledger) CheckUsage(ctx context.Context, identity entity.QuotaIdentity) (entity.UsageSnapshot, error) {
	now := l.now()
	key := l.keyFor(identity, now)
	limit := l.limitFor(identity)

	used, err := l.repo.GetCount(ctx, key)
	if err != nil {
		return entity.UsageSnapshot{}, errors.Wrap(err, "failed to read usage counter")
	}

	return entity.NewUsageSnapshot(used, limit, l.resetsAt(now)), nil
}

// RecordUsage counts one analysis. At the ceiling it returns ErrQuotaExceeded and a full snapshot.
func (l *Ledger) RecordUsage(ctx context.Context, identity entity.QuotaIdentity) (entity.UsageSnapshot, error) {
	now := l.now()
	key := l.keyFor(identity, now)
	limit := l.limitFor(identity)
	resetsAt := l.resetsAt(now)

	if limit <= 0 {
		return entity.NewUsageSnapshot(0, limit, resetsAt), domainerrors.ErrQuotaExceeded
	}

	used, err := l.repo.IncrementIfBelow(ctx, key, limit)
	if err != nil {
		if errors.Is(err, repository.ErrUsageLimitReached) {
			return entity.NewUsageSnapshot(limit, limit, resetsAt), domainerrors.ErrQuotaExceeded
		}

		return entity.UsageSnapshot{}, errors.Wrap(err, "failed to record usage")
	}

	return entity.NewUsageSnapshot(used, limit, resetsAt), nil
}

// PurgeExpired deletes counters for days before today minus retentionDays.
func (l *Ledger) PurgeExpired(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, domainerrors.ErrConfiguration.WrapMessage("quota.retentionDays must be positive")
	}

	cutoff := l.dayOf(l.now()).AddDate(0, 0, -retentionDays)

	removed, err := l.repo.PurgeBefore(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge usage counters")
	}

	return removed, nil
}

func (l *Ledger) limitFor(identity entity.QuotaIdentity) int {
	if identity.Kind == entity.IdentityUser {
		return l.userLimit
	}

	return l.anonymousLimit
}

func (l *Ledger) keyFor(identity entity.QuotaIdentity, now time.Time) entity.UsageKey {
	return entity.UsageKey{Identity: identity, Day: l.dayOf(now)}
}

// dayOf returns the calendar date in the quota zone, expressed as midnight UTC.
func (l *Ledger) dayOf(t time.Time) time.Time {
	y, m, d := t.In(l.location).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// resetsAt returns the next midnight in the quota zone.
func (l *Ledger) resetsAt(t time.Time) time.Time {
	y, m, d := t.In(l.location).Date()

	return time.Date(y, m, d+1, 0, 0, 0, 0, l.location).UTC()
}
