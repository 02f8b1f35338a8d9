package handlers_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/donaldgifford/etsy-bridge/internal/api/handlers"
	"github.com/donaldgifford/etsy-bridge/internal/api/handlers/mocks"
	"github.com/donaldgifford/etsy-bridge/internal/etsy"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthServer(t *testing.T, flow handlers.Authorizer, store *etsy.SessionStore) *echo.Echo {
	t.Helper()

	e := echo.New()
	_, api := humatest.New(t)
	handlers.RegisterAuthRoutes(e, api, handlers.NewAuthHandler(flow, store, quietLogger()))
	return e
}

func TestAuthHandler_Redirect(t *testing.T) {
	t.Parallel()

	flow := mocks.NewMockAuthorizer(t)
	flow.EXPECT().Begin().Return(&etsy.Authorization{
		URL:   "https://www.etsy.com/oauth/connect?response_type=code&state=s1",
		State: "s1",
	}, nil).Once()

	e := newAuthServer(t, flow, etsy.NewSessionStore())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth", http.NoBody))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://www.etsy.com/oauth/connect?response_type=code&state=s1", rec.Header().Get("Location"))
}

func TestAuthHandler_RedirectBeginFails(t *testing.T) {
	t.Parallel()

	flow := mocks.NewMockAuthorizer(t)
	flow.EXPECT().Begin().Return(nil, etsy.ErrInvalidVerifier).Once()

	e := newAuthServer(t, flow, etsy.NewSessionStore())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal", gjson.Get(rec.Body.String(), "error_type").String())
}

func TestAuthHandler_Callback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setupMock  func(*mocks.MockAuthorizer)
		wantStatus int
		wantBody   string
		wantType   string
		wantRemote string
	}{
		{
			name:  "success",
			query: "?code=abc&state=s1",
			setupMock: func(m *mocks.MockAuthorizer) {
				m.EXPECT().Complete(mock.Anything, "abc", "s1").
					Return(&etsy.Session{AccessToken: "tok"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   handlers.AuthSuccessText,
		},
		{
			name:  "code without state",
			query: "?code=abc",
			setupMock: func(m *mocks.MockAuthorizer) {
				m.EXPECT().Complete(mock.Anything, "abc", "").
					Return(nil, etsy.ErrStateMismatch).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantType:   handlers.ErrorTypeAuthState,
		},
		{
			name:       "missing code",
			query:      "?state=s1",
			setupMock:  func(*mocks.MockAuthorizer) {},
			wantStatus: http.StatusBadRequest,
			wantType:   handlers.ErrorTypeInvalidField,
		},
		{
			name:       "user denied access",
			query:      "?error=access_denied&error_description=The+user+denied+the+request",
			setupMock:  func(*mocks.MockAuthorizer) {},
			wantStatus: http.StatusBadRequest,
			wantType:   handlers.ErrorTypeAuthExchange,
		},
		{
			name:  "remote rejects code",
			query: "?code=stale&state=s1",
			setupMock: func(m *mocks.MockAuthorizer) {
				m.EXPECT().Complete(mock.Anything, "stale", "s1").
					Return(nil, &etsy.AuthExchangeError{
						StatusCode: http.StatusBadRequest,
						Body:       []byte(`{"error":"invalid_grant","error_description":"code was already redeemed"}`),
					}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantType:   handlers.ErrorTypeAuthExchange,
			wantRemote: `{"error":"invalid_grant","error_description":"code was already redeemed"}`,
		},
		{
			name:  "state mismatch",
			query: "?code=abc&state=forged",
			setupMock: func(m *mocks.MockAuthorizer) {
				m.EXPECT().Complete(mock.Anything, "abc", "forged").
					Return(nil, etsy.ErrStateMismatch).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantType:   handlers.ErrorTypeAuthState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flow := mocks.NewMockAuthorizer(t)
			tt.setupMock(flow)
			e := newAuthServer(t, flow, etsy.NewSessionStore())

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback"+tt.query, http.NoBody))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, gjson.Get(rec.Body.String(), "error_type").String())
			}
			if tt.wantRemote != "" {
				assert.JSONEq(t, tt.wantRemote, gjson.Get(rec.Body.String(), "remote").Raw)
			}
		})
	}
}

func TestAuthHandler_Status(t *testing.T) {
	t.Parallel()

	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	tests := []struct {
		name            string
		session         *etsy.Session
		wantAuth        bool
		wantExpired     bool
		wantRefreshable bool
		wantExpiresAt   bool
	}{
		{
			name: "no session",
		},
		{
			name:            "fresh session",
			session:         &etsy.Session{AccessToken: "a", RefreshToken: "r", ObtainedAt: time.Now(), ExpiresAt: expires},
			wantAuth:        true,
			wantRefreshable: true,
			wantExpiresAt:   true,
		},
		{
			name:          "expired session",
			session:       &etsy.Session{AccessToken: "a", ExpiresAt: time.Now().Add(-time.Minute)},
			wantAuth:      true,
			wantExpired:   true,
			wantExpiresAt: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := etsy.NewSessionStore()
			if tt.session != nil {
				store.Replace(tt.session)
			}

			_, api := humatest.New(t)
			handlers.RegisterAuthRoutes(echo.New(), api, handlers.NewAuthHandler(mocks.NewMockAuthorizer(t), store, quietLogger()))

			resp := api.Get("/auth/status")
			require.Equal(t, http.StatusOK, resp.Code)

			body := resp.Body.String()
			assert.Equal(t, tt.wantAuth, gjson.Get(body, "authenticated").Bool())
			assert.Equal(t, tt.wantExpired, gjson.Get(body, "expired").Bool())
			assert.Equal(t, tt.wantRefreshable, gjson.Get(body, "refreshable").Bool())
			assert.Equal(t, tt.wantExpiresAt, gjson.Get(body, "expires_at").Exists())
			assert.NotContains(t, body, `"a"`, "tokens are never echoed")
		})
	}
}
