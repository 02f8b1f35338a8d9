package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/etsy-bridge/internal/etsy"
)

// AuthSuccessText is the callback's success body.
const AuthSuccessText = "✅ Authentication successful! You can close this window."

// Authorizer starts and completes the Etsy authorization flow.
type Authorizer interface {
	Begin() (*etsy.Authorization, error)
	Complete(ctx context.Context, code, state string) (*etsy.Session, error)
}

// SessionReader returns the current Etsy session, or nil.
type SessionReader interface {
	Current() *etsy.Session
}

// AuthHandler serves the authorization redirect, the OAuth callback and the
// session status.
type AuthHandler struct {
	flow     Authorizer
	sessions SessionReader
	log      *slog.Logger
	nowFunc  func() time.Time
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(flow Authorizer, sessions SessionReader, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		flow:     flow,
		sessions: sessions,
		log:      log,
		nowFunc:  time.Now,
	}
}

// Redirect starts a new authorization and sends the browser to Etsy.
func (h *AuthHandler) Redirect(c echo.Context) error {
	a, err := h.flow.Begin()
	if err != nil {
		h.log.Error("starting authorization", "error", err)
		return writeError(c, err)
	}
	return c.Redirect(http.StatusFound, a.URL)
}

// Callback exchanges the authorization code Etsy redirected back with.
func (h *AuthHandler) Callback(c echo.Context) error {
	if denied := c.QueryParam("error"); denied != "" {
		msg := denied
		if desc := c.QueryParam("error_description"); desc != "" {
			msg += ": " + desc
		}
		return writeError(c, newErrorResponse(http.StatusBadRequest, ErrorTypeAuthExchange,
			"authorization denied: "+msg))
	}

	code := c.QueryParam("code")
	if code == "" {
		resp := newErrorResponse(http.StatusBadRequest, ErrorTypeInvalidField, "missing authorization code")
		resp.Field = "code"
		return writeError(c, resp)
	}

	if _, err := h.flow.Complete(c.Request().Context(), code, c.QueryParam("state")); err != nil {
		h.log.Warn("authorization callback failed", "error", err)
		return writeError(c, err)
	}

	return c.String(http.StatusOK, AuthSuccessText)
}

// AuthStatusOutput is the response body for the auth status endpoint.
type AuthStatusOutput struct {
	Body struct {
		Authenticated bool       `json:"authenticated" doc:"Whether an access token is held"`
		Expired       bool       `json:"expired" doc:"Whether the access token is past its expiry"`
		Refreshable   bool       `json:"refreshable" doc:"Whether a refresh token is held"`
		ObtainedAt    *time.Time `json:"obtained_at,omitempty" doc:"When the session was installed"`
		ExpiresAt     *time.Time `json:"expires_at,omitempty" doc:"When the access token expires"`
	}
}

// Status reports the current session without exposing its tokens.
func (h *AuthHandler) Status(_ context.Context, _ *struct{}) (*AuthStatusOutput, error) {
	out := &AuthStatusOutput{}

	sess := h.sessions.Current()
	if sess == nil || sess.AccessToken == "" {
		return out, nil
	}

	out.Body.Authenticated = true
	out.Body.Expired = sess.IsExpired(h.nowFunc())
	out.Body.Refreshable = sess.RefreshToken != ""
	if !sess.ObtainedAt.IsZero() {
		out.Body.ObtainedAt = &sess.ObtainedAt
	}
	if !sess.ExpiresAt.IsZero() {
		out.Body.ExpiresAt = &sess.ExpiresAt
	}
	return out, nil
}

// RegisterAuthRoutes registers the browser-facing auth endpoints on e and
// the status endpoint on api.
func RegisterAuthRoutes(e *echo.Echo, api huma.API, h *AuthHandler) {
	e.GET("/auth", h.Redirect)
	e.GET("/callback", h.Callback)

	huma.Register(api, huma.Operation{
		OperationID: "get-auth-status",
		Method:      http.MethodGet,
		Path:        "/auth/status",
		Summary:     "Get Etsy session status",
		Description: "Reports whether the bridge holds an Etsy session and when it expires.",
		Tags:        []string{"auth"},
	}, h.Status)
}

// writeError answers an echo handler with the classified error body.
func writeError(c echo.Context, err error) error {
	resp := toErrorResponse(err)
	return c.JSON(resp.GetStatus(), resp)
}
