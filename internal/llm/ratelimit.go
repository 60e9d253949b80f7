package llm

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimitProvider is a decorator that throttles outbound requests. It
// sits outside the retry layer so retried attempts also count against
// the budget.
type RateLimitProvider struct {
	inner   Provider
	limiter *rate.Limiter
}

// WithRateLimit wraps a Provider with request throttling. A zero
// RequestsPerMinute returns the provider unwrapped.
func WithRateLimit(p Provider, cfg RateLimitConfig) Provider {
	if cfg.RequestsPerMinute <= 0 {
		return p
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), burst)
	return &RateLimitProvider{inner: p, limiter: limiter}
}

// Generate blocks until the limiter grants a token, then delegates.
// Cancellation during the wait surfaces as the context's error.
func (r *RateLimitProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.inner.Generate(ctx, req)
}

func (r *RateLimitProvider) ModelID() string {
	return r.inner.ModelID()
}
