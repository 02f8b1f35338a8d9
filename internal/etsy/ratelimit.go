package etsy

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Etsy Open API v3 default app limits.
const (
	DefaultPerSecond  = 10.0
	DefaultBurst      = 10
	DefaultDailyLimit = 10000
)

// ErrDailyLimitReached is returned when the daily call quota is exhausted.
var ErrDailyLimitReached = errors.New("daily Etsy API limit reached")

// QuotaStatus is a snapshot of the daily quota window.
type QuotaStatus struct {
	Used      int64
	Limit     int64
	Remaining int64
	ResetAt   time.Time
}

// RateLimiter paces calls with a token bucket and counts them against a
// rolling 24-hour quota that starts at the first call of each window.
type RateLimiter struct {
	limiter  *rate.Limiter
	maxDaily int64
	nowFunc  func() time.Time

	mu      sync.Mutex
	used    int64
	resetAt time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a limiter allowing perSecond calls with the given
// burst and at most maxDaily calls per window.
func NewRateLimiter(
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Wait reserves one call from the daily quota and blocks until the token
// bucket allows it. A canceled context returns the context error and gives
// the reservation back.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.reserve(); err != nil {
		return err
	}

	if err := r.limiter.Wait(ctx); err != nil {
		r.release()
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

// Status returns the current quota window.
func (r *RateLimiter) Status() QuotaStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rollLocked()
	return QuotaStatus{
		Used:      r.used,
		Limit:     r.maxDaily,
		Remaining: max(r.maxDaily-r.used, 0),
		ResetAt:   r.resetAt,
	}
}

func (r *RateLimiter) reserve() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rollLocked()
	if r.resetAt.IsZero() {
		r.resetAt = r.nowFunc().Add(24 * time.Hour)
	}
	if r.used >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d, resets %s)",
			ErrDailyLimitReached, r.used, r.maxDaily, r.resetAt.Format(time.RFC3339))
	}
	r.used++
	return nil
}

func (r *RateLimiter) release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.used > 0 {
		r.used--
	}
}

func (r *RateLimiter) rollLocked() {
	if !r.resetAt.IsZero() && !r.nowFunc().Before(r.resetAt) {
		r.used = 0
		r.resetAt = time.Time{}
	}
}
