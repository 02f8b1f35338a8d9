package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/donaldgifford/etsy-bridge/internal/api/handlers"
	"github.com/donaldgifford/etsy-bridge/internal/etsy"
)

func TestGetQuota(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rl         *etsy.RateLimiter
		preCalls   int
		wantLimit  int64
		wantUsed   int64
		wantRemain int64
		wantReset  bool
	}{
		{
			name: "nil rate limiter returns zeroes",
		},
		{
			name:       "fresh rate limiter",
			rl:         etsy.NewRateLimiter(100, 10, 10000),
			wantLimit:  10000,
			wantRemain: 10000,
		},
		{
			name:       "rate limiter with usage",
			rl:         etsy.NewRateLimiter(100, 10, 100),
			preCalls:   3,
			wantLimit:  100,
			wantUsed:   3,
			wantRemain: 97,
			wantReset:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for range tt.preCalls {
				require.NoError(t, tt.rl.Wait(context.Background()))
			}

			_, api := humatest.New(t)
			handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(tt.rl))

			resp := api.Get("/quota")
			require.Equal(t, http.StatusOK, resp.Code)

			body := resp.Body.String()
			assert.Equal(t, tt.wantLimit, gjson.Get(body, "daily_limit").Int())
			assert.Equal(t, tt.wantUsed, gjson.Get(body, "daily_used").Int())
			assert.Equal(t, tt.wantRemain, gjson.Get(body, "remaining").Int())
			assert.Equal(t, tt.wantReset, gjson.Get(body, "reset_at").Exists())
		})
	}
}
