package redis

import (
	"context"
	"time"

	"brewlog/config"
	"brewlog/internal/domain/entity"
	"brewlog/internal/domain/repository"
	"brewlog/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

const (
	dayLayout = "2006-01-02"
	// expiryGrace keeps a counter slightly past the retention horizon so time zones never cut it short.
	expiryGrace = 48 * time.Hour
)

// incrementIfBelow returns the new count, or -1 when the counter already reached the limit.
var incrementIfBelow = goredis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current >= tonumber(ARGV[1]) then
  return -1
end
local n = redis.call('INCR', KEYS[1])
redis.call('EXPIRE', KEYS[1], ARGV[2])
return n
`)

type usageRepository struct {
	client    goredis.Cmdable
	keyPrefix string
	ttl       time.Duration
}

// NewUsageRepository creates a Redis usage counter store. Counters expire after the retention horizon.
func NewUsageRepository(client *goredis.Client, cfg *config.Config) repository.UsageRepository {
	prefix := "brewlog:"
	if cfg.Redis != nil && cfg.Redis.KeyPrefix != "" {
		prefix = cfg.Redis.KeyPrefix
	}

	return newUsageRepository(client, prefix, cfg.Quota.RetentionDays)
}

func newUsageRepository(client goredis.Cmdable, prefix string, retentionDays int) *usageRepository {
	return &usageRepository{
		client:    client,
		keyPrefix: prefix,
		ttl:       time.Duration(retentionDays)*24*time.Hour + expiryGrace,
	}
}

func (r *usageRepository) GetCount(ctx context.Context, key entity.UsageKey) (int, error) {
	count, err := r.client.Get(ctx, r.redisKey(key)).Int()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to read usage counter")
	}

	return count, nil
}

func (r *usageRepository) IncrementIfBelow(ctx context.Context, key entity.UsageKey, limit int) (int, error) {
	if limit <= 0 {
		return 0, repository.ErrUsageLimitReached
	}

	count, err := incrementIfBelow.Run(ctx, r.client, []string{r.redisKey(key)}, limit, int64(r.ttl/time.Second)).Int()
	if err != nil {
		return 0, errors.Wrap(err, "failed to increment usage counter")
	}
	if count < 0 {
		return 0, repository.ErrUsageLimitReached
	}

	return count, nil
}

// PurgeBefore is a no-op: counters carry their own expiry.
func (r *usageRepository) PurgeBefore(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (r *usageRepository) redisKey(key entity.UsageKey) string {
	return r.keyPrefix + "usage:" + string(key.Identity.Kind) + ":" + key.Identity.Value + ":" + key.Day.Format(dayLayout)
}
