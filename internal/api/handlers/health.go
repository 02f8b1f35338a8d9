package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Banner is the plain text served at the root path.
const Banner = "Etsy Automation Server Running"

// SessionChecker reports whether an Etsy access token is held.
type SessionChecker interface {
	Authenticated() bool
}

// HealthHandler provides the root banner and the health endpoints.
type HealthHandler struct {
	sessions SessionChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s SessionChecker) *HealthHandler {
	return &HealthHandler{sessions: s}
}

// Root returns the plain text banner.
func (*HealthHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, Banner)
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 once an Etsy session is held, 503 before that. The
// authorization endpoints work either way.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if !h.sessions.Authenticated() {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unauthenticated"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}

// RegisterHealthRoutes registers the banner and probe endpoints on e.
func RegisterHealthRoutes(e *echo.Echo, h *HealthHandler) {
	e.GET("/", h.Root)
	e.GET("/healthz", h.Healthz)
	e.GET("/readyz", h.Readyz)
}
