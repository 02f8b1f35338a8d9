package etsy_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/etsy-bridge/internal/etsy"
)

type stubRefresher struct {
	calls atomic.Int32
	delay time.Duration
	err   error
	next  func(refreshToken string) *etsy.Session
}

func (s *stubRefresher) Refresh(_ context.Context, refreshToken string) (*etsy.Session, error) {
	s.calls.Add(1)
	time.Sleep(s.delay)
	if s.err != nil {
		return nil, s.err
	}
	return s.next(refreshToken), nil
}

func TestSession_IsExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		sess *etsy.Session
		want bool
	}{
		{name: "nil session", sess: nil, want: false},
		{name: "no expiry", sess: &etsy.Session{AccessToken: "a"}, want: false},
		{name: "valid", sess: &etsy.Session{ExpiresAt: now.Add(time.Hour)}, want: false},
		{name: "within skew", sess: &etsy.Session{ExpiresAt: now.Add(30 * time.Second)}, want: true},
		{name: "past", sess: &etsy.Session{ExpiresAt: now.Add(-time.Minute)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.sess.IsExpired(now))
		})
	}
}

func TestSessionStore_Replace(t *testing.T) {
	t.Parallel()

	store := etsy.NewSessionStore()
	assert.Nil(t, store.Current())
	assert.False(t, store.Authenticated())

	store.Replace(&etsy.Session{AccessToken: "tok1", RefreshToken: "ref1"})
	require.NotNil(t, store.Current())
	assert.True(t, store.Authenticated())
	assert.Equal(t, "tok1", store.Current().AccessToken)
	assert.Equal(t, "ref1", store.Current().RefreshToken)
}

func TestSessionStore_ConcurrentReadersSeeWholePairs(t *testing.T) {
	t.Parallel()

	store := etsy.NewSessionStore()
	store.Replace(&etsy.Session{AccessToken: "a0", RefreshToken: "r0"})

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := range 500 {
			if i%2 == 0 {
				store.Replace(&etsy.Session{AccessToken: "a1", RefreshToken: "r1"})
			} else {
				store.Replace(&etsy.Session{AccessToken: "a0", RefreshToken: "r0"})
			}
		}
	}()

	go func() {
		defer wg.Done()
		for range 500 {
			s := store.Current()
			assert.Equal(t, s.AccessToken[1:], s.RefreshToken[1:])
		}
	}()

	wg.Wait()
}

func TestSessionTokenProvider_Token(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	nowFunc := func() time.Time { return now }

	t.Run("empty store is unauthenticated", func(t *testing.T) {
		t.Parallel()

		p := etsy.NewSessionTokenProvider(etsy.NewSessionStore())
		_, err := p.Token(context.Background())
		require.ErrorIs(t, err, etsy.ErrUnauthenticated)
	})

	t.Run("valid session returns access token", func(t *testing.T) {
		t.Parallel()

		store := etsy.NewSessionStore()
		store.Replace(&etsy.Session{AccessToken: "tok1", ExpiresAt: now.Add(time.Hour)})

		r := &stubRefresher{}
		p := etsy.NewSessionTokenProvider(store,
			etsy.WithRefresher(r), etsy.WithSessionNowFunc(nowFunc))

		tok, err := p.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok1", tok)
		assert.Equal(t, int32(0), r.calls.Load())
	})

	t.Run("expired session is refreshed", func(t *testing.T) {
		t.Parallel()

		store := etsy.NewSessionStore()
		store.Replace(&etsy.Session{
			AccessToken:  "old",
			RefreshToken: "ref1",
			ExpiresAt:    now.Add(-time.Minute),
		})

		r := &stubRefresher{next: func(rt string) *etsy.Session {
			assert.Equal(t, "ref1", rt)
			return &etsy.Session{AccessToken: "new", ExpiresAt: now.Add(time.Hour)}
		}}
		p := etsy.NewSessionTokenProvider(store,
			etsy.WithRefresher(r), etsy.WithSessionNowFunc(nowFunc))

		tok, err := p.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "new", tok)
		assert.Equal(t, "new", store.Current().AccessToken)
		// Refresh token carried over when the response omits one.
		assert.Equal(t, "ref1", store.Current().RefreshToken)
	})

	t.Run("expired session without refresher keeps token", func(t *testing.T) {
		t.Parallel()

		store := etsy.NewSessionStore()
		store.Replace(&etsy.Session{AccessToken: "old", ExpiresAt: now.Add(-time.Minute)})

		p := etsy.NewSessionTokenProvider(store, etsy.WithSessionNowFunc(nowFunc))
		tok, err := p.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "old", tok)
	})

	t.Run("failed refresh leaves session untouched", func(t *testing.T) {
		t.Parallel()

		store := etsy.NewSessionStore()
		orig := &etsy.Session{
			AccessToken:  "old",
			RefreshToken: "ref1",
			ExpiresAt:    now.Add(-time.Minute),
		}
		store.Replace(orig)

		r := &stubRefresher{err: errors.New("invalid_grant")}
		p := etsy.NewSessionTokenProvider(store,
			etsy.WithRefresher(r), etsy.WithSessionNowFunc(nowFunc))

		_, err := p.Token(context.Background())
		require.Error(t, err)
		assert.Same(t, orig, store.Current())
	})
}

func TestSessionTokenProvider_ConcurrentRefreshIsShared(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	store := etsy.NewSessionStore()
	store.Replace(&etsy.Session{
		AccessToken:  "old",
		RefreshToken: "ref1",
		ExpiresAt:    now.Add(-time.Minute),
	})

	r := &stubRefresher{
		delay: 20 * time.Millisecond,
		next: func(string) *etsy.Session {
			return &etsy.Session{AccessToken: "new", RefreshToken: "ref2", ExpiresAt: now.Add(time.Hour)}
		},
	}
	p := etsy.NewSessionTokenProvider(store,
		etsy.WithRefresher(r),
		etsy.WithSessionNowFunc(func() time.Time { return now }),
	)

	const goroutines = 10

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			tok, err := p.Token(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "new", tok)
		}()
	}

	wg.Wait()
	assert.Less(t, r.calls.Load(), int32(goroutines))
}

type gatedRefresher struct {
	once    sync.Once
	started chan struct{}
	release chan struct{}
	calls   atomic.Int32
	ctxErr  atomic.Value
}

func (g *gatedRefresher) Refresh(ctx context.Context, _ string) (*etsy.Session, error) {
	g.calls.Add(1)
	g.once.Do(func() { close(g.started) })
	<-g.release
	if err := ctx.Err(); err != nil {
		g.ctxErr.Store(err)
		return nil, err
	}
	return &etsy.Session{AccessToken: "new", RefreshToken: "ref2"}, nil
}

func TestSessionTokenProvider_RefreshOutlivesCanceledCaller(t *testing.T) {
	t.Parallel()

	store := etsy.NewSessionStore()
	store.Replace(&etsy.Session{AccessToken: "old", RefreshToken: "ref1"})

	r := &gatedRefresher{started: make(chan struct{}), release: make(chan struct{})}
	p := etsy.NewSessionTokenProvider(store, etsy.WithRefresher(r))

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := p.Refresh(ctxA)
		errA <- err
	}()

	<-r.started
	cancelA()
	require.ErrorIs(t, <-errA, context.Canceled)

	type result struct {
		sess *etsy.Session
		err  error
	}
	resB := make(chan result, 1)
	go func() {
		sess, err := p.Refresh(context.Background())
		resB <- result{sess, err}
	}()

	time.Sleep(20 * time.Millisecond)
	close(r.release)

	got := <-resB
	require.NoError(t, got.err)
	assert.Equal(t, "new", got.sess.AccessToken)
	assert.Equal(t, "new", store.Current().AccessToken)
	assert.Nil(t, r.ctxErr.Load(), "the shared refresh must not see the first caller's cancellation")
}

func TestSessionTokenProvider_RefreshTimeout(t *testing.T) {
	t.Parallel()

	store := etsy.NewSessionStore()
	orig := &etsy.Session{AccessToken: "old", RefreshToken: "ref1"}
	store.Replace(orig)

	r := &deadlineRefresher{}
	p := etsy.NewSessionTokenProvider(store,
		etsy.WithRefresher(r),
		etsy.WithRefreshTimeout(10*time.Millisecond),
	)

	_, err := p.Refresh(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Same(t, orig, store.Current())
}

type deadlineRefresher struct{}

func (deadlineRefresher) Refresh(ctx context.Context, _ string) (*etsy.Session, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
