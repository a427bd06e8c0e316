package mcp

import (
	"fmt"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

// RateLimitConfig holds the token bucket settings for tool calls.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimit allows short bursts from an assistant while capping
// sustained load on the router.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 5.0, BurstSize: 10}

// RateLimiter throttles tool calls with a token bucket.
// Calls never wait: an empty bucket rejects the call with ErrRateLimited.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a rate limiter. Non-positive fields fall back to
// DefaultRateLimit.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRateLimit.RequestsPerSecond
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = DefaultRateLimit.BurstSize
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Allow takes a token for tool, or returns ErrRateLimited.
func (r *RateLimiter) Allow(tool string) error {
	if !r.limiter.Allow() {
		return fmt.Errorf("%s: %w", tool, domain.ErrRateLimited)
	}
	return nil
}
