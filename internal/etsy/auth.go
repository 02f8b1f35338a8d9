package etsy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/donaldgifford/etsy-bridge/internal/metrics"
)

const (
	defaultAuthURL  = "https://www.etsy.com/oauth/connect"
	defaultTokenURL = "https://api.etsy.com/v3/public/oauth/token" //nolint:gosec // not a credential
)

// DefaultScopes are the scopes needed to read and write listings.
var DefaultScopes = []string{"listings_r", "listings_w", "shops_r"}

var (
	// ErrNoPendingAuthorization is returned by Complete when no authorization
	// was started with Begin.
	ErrNoPendingAuthorization = errors.New("no authorization in progress")
	// ErrStateMismatch is returned by Complete when the callback state does
	// not match the pending authorization.
	ErrStateMismatch = errors.New("authorization state mismatch")
)

// Authorization is a started authorization request.
type Authorization struct {
	URL   string
	State string
	PKCE  *PKCE
}

// AuthFlow drives the Authorization Code + PKCE grant against the Etsy
// identity endpoints and installs the resulting session.
type AuthFlow struct {
	conf          *oauth2.Config
	store         *SessionStore
	client        *http.Client
	fixedVerifier string
	log           *slog.Logger
	nowFunc       func() time.Time

	pending atomic.Pointer[Authorization]
}

// AuthOption configures the AuthFlow.
type AuthOption func(*AuthFlow)

// WithAuthURL overrides the default Etsy authorization endpoint.
func WithAuthURL(u string) AuthOption {
	return func(f *AuthFlow) {
		f.conf.Endpoint.AuthURL = u
	}
}

// WithTokenURL overrides the default Etsy token endpoint.
func WithTokenURL(u string) AuthOption {
	return func(f *AuthFlow) {
		f.conf.Endpoint.TokenURL = u
	}
}

// WithScopes overrides DefaultScopes.
func WithScopes(scopes []string) AuthOption {
	return func(f *AuthFlow) {
		f.conf.Scopes = scopes
	}
}

// WithHTTPClient overrides the HTTP client used for token requests.
func WithHTTPClient(c *http.Client) AuthOption {
	return func(f *AuthFlow) {
		f.client = c
	}
}

// WithFixedVerifier makes Begin reuse verifier instead of generating one.
// The verifier must already have passed ValidateVerifier.
func WithFixedVerifier(verifier string) AuthOption {
	return func(f *AuthFlow) {
		f.fixedVerifier = verifier
	}
}

// WithAuthLogger sets the logger.
func WithAuthLogger(l *slog.Logger) AuthOption {
	return func(f *AuthFlow) {
		f.log = l
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(fn func() time.Time) AuthOption {
	return func(f *AuthFlow) {
		f.nowFunc = fn
	}
}

// NewAuthFlow creates an AuthFlow for the given app keystring and callback.
func NewAuthFlow(
	clientID, redirectURL string,
	store *SessionStore,
	opts ...AuthOption,
) *AuthFlow {
	f := &AuthFlow{
		conf: &oauth2.Config{
			ClientID:    clientID,
			RedirectURL: redirectURL,
			Scopes:      DefaultScopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   defaultAuthURL,
				TokenURL:  defaultTokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		store:   store,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     slog.Default(),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AuthorizationURL builds the connect URL for the given state and S256
// challenge. Scopes are space-joined and every value is percent-encoded.
func (f *AuthFlow) AuthorizationURL(state, challenge string) string {
	u := f.conf.AuthCodeURL(
		state,
		oauth2.SetAuthURLParam("code_challenge", challenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)
	// Form encoding writes spaces as '+'; a literal '+' is already %2B.
	return strings.ReplaceAll(u, "+", "%20")
}

// Begin starts a new authorization: a fresh PKCE pair and state become the
// pending authorization and the connect URL is returned.
func (f *AuthFlow) Begin() (*Authorization, error) {
	var (
		pkce *PKCE
		err  error
	)
	if f.fixedVerifier != "" {
		pkce, err = NewPKCE(f.fixedVerifier)
	} else {
		pkce, err = GeneratePKCE()
	}
	if err != nil {
		return nil, err
	}

	state := uuid.NewString()
	a := &Authorization{
		URL:   f.AuthorizationURL(state, pkce.Challenge),
		State: state,
		PKCE:  pkce,
	}
	f.pending.Store(a)
	return a, nil
}

// Complete exchanges code using the pending authorization's verifier. The
// callback must echo the state Begin issued.
func (f *AuthFlow) Complete(ctx context.Context, code, state string) (*Session, error) {
	a := f.pending.Load()
	if a == nil {
		return nil, ErrNoPendingAuthorization
	}
	if state != a.State {
		return nil, ErrStateMismatch
	}

	sess, err := f.ExchangeCode(ctx, code, a.PKCE.Verifier)
	if err != nil {
		return nil, err
	}
	f.pending.CompareAndSwap(a, nil)
	return sess, nil
}

// ExchangeCode trades an authorization code for tokens. On success the
// session store is replaced with the new pair; on failure it is untouched.
func (f *AuthFlow) ExchangeCode(ctx context.Context, code, verifier string) (*Session, error) {
	tok, err := f.conf.Exchange(f.withClient(ctx), code, oauth2.VerifierOption(verifier))
	if err != nil {
		metrics.TokenRequestsTotal.WithLabelValues("authorization_code", "error").Inc()
		return nil, toAuthExchangeError(err)
	}
	metrics.TokenRequestsTotal.WithLabelValues("authorization_code", "success").Inc()

	sess := f.sessionFromToken(tok)
	f.store.Replace(sess)
	f.log.Info("etsy session established", "expires_at", sess.ExpiresAt)
	return sess, nil
}

// Refresh exchanges refreshToken for a new session. It does not touch the
// store; SessionTokenProvider installs the result.
func (f *AuthFlow) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	src := f.conf.TokenSource(f.withClient(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		metrics.TokenRequestsTotal.WithLabelValues("refresh_token", "error").Inc()
		return nil, toAuthExchangeError(err)
	}
	metrics.TokenRequestsTotal.WithLabelValues("refresh_token", "success").Inc()

	sess := f.sessionFromToken(tok)
	f.log.Info("etsy session refreshed", "expires_at", sess.ExpiresAt)
	return sess, nil
}

func (f *AuthFlow) withClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, f.client)
}

func (f *AuthFlow) sessionFromToken(tok *oauth2.Token) *Session {
	return &Session{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ObtainedAt:   f.nowFunc(),
		ExpiresAt:    tok.Expiry,
	}
}

func toAuthExchangeError(err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.Response != nil {
		return &AuthExchangeError{
			StatusCode: re.Response.StatusCode,
			Body:       re.Body,
			Err:        err,
		}
	}
	return &AuthExchangeError{Err: fmt.Errorf("exchanging token: %w", err)}
}
