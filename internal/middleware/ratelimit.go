package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"patient-portal-assistant/internal/model"
	"patient-portal-assistant/pkg/response"
)

// RateLimit applies a token bucket per user (per client IP when no scope is set).
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if sc, ok := model.GetScopeFromContext(c.Request.Context()); ok {
			key = sc.UserID
		}

		if !m.limiter.Allow(key) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			m.metrics.RecordRateLimited()
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one limiter per key, evicting idle keys.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// newRateLimiter returns nil when limiting is disabled.
func newRateLimiter(cfg RateLimitConfig) *rateLimiter {
	if cfg.RequestsPerMin <= 0 {
		return nil
	}
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = defaultLimiterCapacity
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](capacity, nil, limiterTTL),
		rate:     rate.Limit(float64(cfg.RequestsPerMin) / 60.0),
		burst:    max(cfg.RequestsPerMin/10, 1),
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	if rl == nil {
		return true
	}

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
