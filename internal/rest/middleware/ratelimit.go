package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/contractorpro/contractorpro/internal/config"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// idle limiters are dropped after this long
const limiterTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per caller, keyed by user id when
// authenticated and by client IP otherwise.
type RateLimiter struct {
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
	logger   *logger.Logger
}

func NewRateLimiter(cfg *config.Configuration, logger *logger.Logger) *RateLimiter {
	burst := cfg.RateLimit.Burst
	if burst <= 0 {
		burst = int(math.Ceil(cfg.RateLimit.RequestsPerSecond))
	}
	return &RateLimiter{
		limiters: cache.New(limiterTTL, 2*limiterTTL),
		limit:    rate.Limit(cfg.RateLimit.RequestsPerSecond),
		burst:    burst,
		logger:   logger,
	}
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	if v, ok := rl.limiters.Get(key); ok {
		limiter := v.(*rate.Limiter)
		rl.limiters.SetDefault(key, limiter)
		return limiter
	}
	limiter := rate.NewLimiter(rl.limit, rl.burst)
	// another request may have added the key first
	if err := rl.limiters.Add(key, limiter, cache.DefaultExpiration); err != nil {
		if v, ok := rl.limiters.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := types.GetUserID(c.Request.Context())
		if key == "" {
			key = c.ClientIP()
		}

		if !rl.limiterFor(key).Allow() {
			rl.logger.Warnw("rate limit exceeded",
				"key", key,
				"method", c.Request.Method,
				"path", c.FullPath(),
			)
			c.Header(types.HeaderRetryAfter, strconv.Itoa(rl.retryAfterSeconds()))
			c.Error(ierr.NewError("rate limit exceeded").
				WithHint("Too many requests, please slow down").
				Mark(ierr.ErrRateLimited))
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) retryAfterSeconds() int {
	if rl.limit <= 0 {
		return 1
	}
	return int(math.Max(1, math.Ceil(1/float64(rl.limit))))
}
