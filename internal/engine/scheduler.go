// Package engine runs the bridge's background jobs.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/etsy-bridge/internal/etsy"
	"github.com/donaldgifford/etsy-bridge/internal/metrics"
)

// SessionSource returns the current Etsy session, or nil.
type SessionSource interface {
	Current() *etsy.Session
}

// SessionRefresher exchanges the stored refresh token and installs the
// result.
type SessionRefresher interface {
	Refresh(ctx context.Context) (*etsy.Session, error)
}

// Scheduler refreshes the Etsy session ahead of expiry so request paths
// rarely pay for a token round trip.
type Scheduler struct {
	cron      *cron.Cron
	sessions  SessionSource
	refresher SessionRefresher
	lead      time.Duration
	timeout   time.Duration
	nowFunc   func() time.Time
	log       *slog.Logger

	refreshEntryID cron.EntryID
}

// Option configures the Scheduler.
type Option func(*Scheduler)

// WithTimeout bounds a single refresh attempt.
func WithTimeout(d time.Duration) Option {
	return func(s *Scheduler) {
		s.timeout = d
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(s *Scheduler) {
		s.nowFunc = f
	}
}

// NewScheduler creates a Scheduler that checks the session every interval
// and refreshes it when it expires before the following check.
func NewScheduler(
	sessions SessionSource,
	refresher SessionRefresher,
	interval time.Duration,
	log *slog.Logger,
	opts ...Option,
) (*Scheduler, error) {
	s := &Scheduler{
		cron:      cron.New(),
		sessions:  sessions,
		refresher: refresher,
		lead:      interval + time.Minute,
		timeout:   30 * time.Second,
		nowFunc:   time.Now,
		log:       log,
	}
	for _, opt := range opts {
		opt(s)
	}

	id, err := s.cron.AddFunc("@every "+interval.String(), s.tick)
	if err != nil {
		return nil, err
	}
	s.refreshEntryID = id

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("refresh scheduler started")
	s.cron.Start()
	s.SyncNextRunTimestamp()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("refresh scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamp publishes the next check time as a gauge.
func (s *Scheduler) SyncNextRunTimestamp() {
	if next := s.cron.Entry(s.refreshEntryID).Next; !next.IsZero() {
		metrics.SchedulerNextRefreshTimestamp.Set(float64(next.Unix()))
	}
}

// RefreshIfDue refreshes the session when it expires within the lead time.
// It reports whether a refresh was attempted.
func (s *Scheduler) RefreshIfDue(ctx context.Context) (bool, error) {
	sess := s.sessions.Current()
	if sess == nil || sess.RefreshToken == "" || sess.ExpiresAt.IsZero() {
		return false, nil
	}
	if s.nowFunc().Add(s.lead).Before(sess.ExpiresAt) {
		return false, nil
	}

	next, err := s.refresher.Refresh(ctx)
	if err != nil {
		metrics.ScheduledRefreshesTotal.WithLabelValues("error").Inc()
		return true, err
	}
	metrics.ScheduledRefreshesTotal.WithLabelValues("success").Inc()
	s.log.Info("etsy session refreshed ahead of expiry", "expires_at", next.ExpiresAt)
	return true, nil
}

func (s *Scheduler) tick() {
	defer s.SyncNextRunTimestamp()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.RefreshIfDue(ctx); err != nil {
		// The old session stays installed; requests keep using it until it
		// expires, then retry the refresh themselves.
		s.log.Error("scheduled session refresh failed", "error", err)
	}
}
