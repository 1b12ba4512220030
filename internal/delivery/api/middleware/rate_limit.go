package middleware

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"brewlog/config"
	"brewlog/internal/delivery/api/response"
	deliverycontext "brewlog/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client address with a token bucket.
type RateLimiter struct {
	enabled   bool
	rate      rate.Limit
	burst     int
	logger    *slog.Logger
	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter creates the analyze endpoint limiter from config.
func NewRateLimiter(cfg *config.Config, logger *slog.Logger) *RateLimiter {
	limit := cfg.HTTP.AnalyzeRateLimit

	return &RateLimiter{
		enabled:  limit.Enabled,
		rate:     rate.Limit(limit.RequestsPerSecond),
		burst:    limit.Burst,
		logger:   logger,
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

// Limit answers 429 once the caller's bucket is empty.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.enabled {
			return next(c)
		}

		key := c.RealIP()
		if rl.allow(key) {
			return next(c)
		}

		deliverycontext.LoggerOrDefault(c.Request().Context(), rl.logger).Warn("Rate limit exceeded",
			slog.String("route", c.Path()),
		)

		return response.TooManyRequests(c, "RATE_LIMITED", "請求過於頻繁，請稍後再試", rl.retryAfterSeconds())
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > limiterIdleTTL {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) > limiterIdleTTL {
				delete(rl.visitors, k)
			}
		}
		rl.lastSweep = now
	}

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) retryAfterSeconds() int {
	if rl.rate <= 0 {
		return 1
	}

	return max(1, int(math.Ceil(1/float64(rl.rate))))
}
