package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/etsy-bridge/internal/etsy"
)

// QuotaHandler provides the Etsy API quota status endpoint.
type QuotaHandler struct {
	rl *etsy.RateLimiter
}

// NewQuotaHandler creates a new QuotaHandler.
func NewQuotaHandler(rl *etsy.RateLimiter) *QuotaHandler {
	return &QuotaHandler{rl: rl}
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		DailyLimit int64      `json:"daily_limit"        example:"10000"                doc:"Configured daily API call limit"`
		DailyUsed  int64      `json:"daily_used"         example:"142"                  doc:"API calls used in the current 24-hour window"`
		Remaining  int64      `json:"remaining"          example:"9858"                 doc:"API calls remaining in the current window"`
		ResetAt    *time.Time `json:"reset_at,omitempty" example:"2026-06-16T14:30:00Z" doc:"When the current window expires; absent before the first call"`
	}
}

// GetQuota returns the current Etsy API quota status.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.rl == nil {
		return resp, nil
	}

	st := h.rl.Status()
	resp.Body.DailyLimit = st.Limit
	resp.Body.DailyUsed = st.Used
	resp.Body.Remaining = st.Remaining
	if !st.ResetAt.IsZero() {
		resp.Body.ResetAt = &st.ResetAt
	}
	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/quota",
		Summary:     "Get Etsy API quota status",
		Description: "Returns the current daily API call usage, remaining quota, and window reset time.",
		Tags:        []string{"etsy"},
	}, h.GetQuota)
}
