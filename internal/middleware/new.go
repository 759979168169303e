package middleware

import (
	"patient-portal-assistant/internal/metrics"
	"patient-portal-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	metrics *metrics.Metrics
}

// RateLimitConfig configures the per-user limiter. RequestsPerMin <= 0
// disables limiting.
type RateLimitConfig struct {
	RequestsPerMin int
	Capacity       int
}

func New(l log.Logger, cfg RateLimitConfig, m *metrics.Metrics) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg),
		metrics: m,
	}
}
