package middleware

import (
	"booking-backend/pkg/log"
	"booking-backend/pkg/metrics"
)

// Config holds the transport settings the middlewares need.
type Config struct {
	MaxBodyBytes       int64
	CORSAllowedOrigins []string
	RateLimitEnabled   bool
	RateLimitPerMin    int
}

type Middleware struct {
	l            log.Logger
	metrics      *metrics.Metrics
	limiter      *rateLimiter
	maxBodyBytes int64
	corsOrigins  []string
}

// New builds the middleware set. m may be nil.
func New(l log.Logger, m *metrics.Metrics, cfg Config) Middleware {
	mw := Middleware{
		l:            l,
		metrics:      m,
		maxBodyBytes: cfg.MaxBodyBytes,
		corsOrigins:  cfg.CORSAllowedOrigins,
	}
	if cfg.RateLimitEnabled {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
