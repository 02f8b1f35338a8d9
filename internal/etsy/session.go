package etsy

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/donaldgifford/etsy-bridge/internal/metrics"
)

// expirySkew treats a token as expired slightly before its real expiry.
const expirySkew = 60 * time.Second

// Session is an immutable access/refresh token pair. Values are replaced,
// never mutated, so readers always see a complete pair.
type Session struct {
	AccessToken  string
	RefreshToken string
	ObtainedAt   time.Time
	ExpiresAt    time.Time // zero when the token response carried no expiry
}

// IsExpired reports whether the access token is at or past its expiry
// (minus skew). Sessions without an expiry never expire.
func (s *Session) IsExpired(now time.Time) bool {
	if s == nil || s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(s.ExpiresAt.Add(-expirySkew))
}

// SessionStore holds the single process-wide session. Reads are lock-free;
// Replace swaps the whole pair atomically.
type SessionStore struct {
	current atomic.Pointer[Session]
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Current returns the active session, or nil when none is held.
func (s *SessionStore) Current() *Session {
	return s.current.Load()
}

// Replace installs sess as the active session.
func (s *SessionStore) Replace(sess *Session) {
	s.current.Store(sess)
	if sess != nil && sess.AccessToken != "" {
		metrics.SessionAuthenticated.Set(1)
	} else {
		metrics.SessionAuthenticated.Set(0)
	}
}

// Authenticated reports whether an access token is present.
func (s *SessionStore) Authenticated() bool {
	sess := s.current.Load()
	return sess != nil && sess.AccessToken != ""
}

// DefaultRefreshTimeout bounds a refresh token request.
const DefaultRefreshTimeout = 30 * time.Second

// Refresher exchanges a refresh token for a new session.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
}

// SessionTokenProvider implements TokenProvider on top of a SessionStore,
// refreshing expired sessions when a refresh token and Refresher exist.
type SessionTokenProvider struct {
	store     *SessionStore
	refresher Refresher
	group     singleflight.Group
	nowFunc   func() time.Time

	refreshTimeout time.Duration
}

// SessionTokenOption configures a SessionTokenProvider.
type SessionTokenOption func(*SessionTokenProvider)

// WithRefresher enables refresh of expired sessions.
func WithRefresher(r Refresher) SessionTokenOption {
	return func(p *SessionTokenProvider) {
		p.refresher = r
	}
}

// WithRefreshTimeout bounds the shared token request of a refresh.
func WithRefreshTimeout(d time.Duration) SessionTokenOption {
	return func(p *SessionTokenProvider) {
		p.refreshTimeout = d
	}
}

// WithSessionNowFunc overrides the time function for testing.
func WithSessionNowFunc(f func() time.Time) SessionTokenOption {
	return func(p *SessionTokenProvider) {
		p.nowFunc = f
	}
}

// NewSessionTokenProvider creates a token provider reading from store.
func NewSessionTokenProvider(
	store *SessionStore,
	opts ...SessionTokenOption,
) *SessionTokenProvider {
	p := &SessionTokenProvider{
		store:          store,
		nowFunc:        time.Now,
		refreshTimeout: DefaultRefreshTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Token returns the current access token. It fails with ErrUnauthenticated
// when the store is empty.
func (p *SessionTokenProvider) Token(ctx context.Context) (string, error) {
	sess := p.store.Current()
	if sess == nil || sess.AccessToken == "" {
		return "", ErrUnauthenticated
	}

	if !sess.IsExpired(p.nowFunc()) || p.refresher == nil || sess.RefreshToken == "" {
		return sess.AccessToken, nil
	}

	refreshed, err := p.Refresh(ctx)
	if err != nil {
		return "", err
	}
	return refreshed.AccessToken, nil
}

// Refresh exchanges the stored refresh token and installs the new session.
// Concurrent calls share a single token request, which is not bound to any
// one caller's context. Each caller still returns when its own ctx ends. On
// failure the previous session stays in place.
func (p *SessionTokenProvider) Refresh(ctx context.Context) (*Session, error) {
	if p.refresher == nil {
		return nil, ErrUnauthenticated
	}

	ch := p.group.DoChan("refresh", func() (any, error) {
		sess := p.store.Current()
		if sess == nil || sess.RefreshToken == "" {
			return nil, ErrUnauthenticated
		}

		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.refreshTimeout)
		defer cancel()

		next, err := p.refresher.Refresh(refreshCtx, sess.RefreshToken)
		if err != nil {
			return nil, err
		}
		if next.RefreshToken == "" {
			next.RefreshToken = sess.RefreshToken
		}
		p.store.Replace(next)
		return next, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Session), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// NeedsRefresh reports whether the stored session is expired and refreshable.
func (p *SessionTokenProvider) NeedsRefresh() bool {
	sess := p.store.Current()
	return sess != nil && sess.RefreshToken != "" && sess.IsExpired(p.nowFunc())
}
