package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/etsy-bridge/internal/etsy"
	"github.com/donaldgifford/etsy-bridge/internal/media"
	"github.com/donaldgifford/etsy-bridge/internal/publish"
)

func TestToErrorResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantType      string
		wantStage     string
		wantListingID int64
		wantField     string
		wantRemote    string
	}{
		{
			name: "invalid field before any call",
			err: &publish.StageError{
				Stage: publish.StageNormalized,
				Err:   &publish.InvalidFieldError{Field: "shop_id", Reason: "required"},
			},
			wantStatus: http.StatusBadRequest,
			wantType:   ErrorTypeInvalidField,
			wantStage:  "normalized",
			wantField:  "shop_id",
		},
		{
			name:       "unauthenticated",
			err:        fmt.Errorf("creating listing: %w", etsy.ErrUnauthenticated),
			wantStatus: http.StatusUnauthorized,
			wantType:   ErrorTypeUnauthenticated,
		},
		{
			name:       "daily limit",
			err:        fmt.Errorf("%w (10/10)", etsy.ErrDailyLimitReached),
			wantStatus: http.StatusTooManyRequests,
			wantType:   ErrorTypeRateLimited,
		},
		{
			name: "remote error after creation keeps listing and payload",
			err: &publish.StageError{
				Stage:     publish.StageInventorySet,
				ListingID: 999,
				Err: &etsy.RemoteAPIError{
					Op:         "updateListingInventory",
					StatusCode: http.StatusBadRequest,
					Body:       []byte(`{"error":"price_on_property must include 513"}`),
				},
			},
			wantStatus:    http.StatusBadRequest,
			wantType:      ErrorTypeRemoteAPI,
			wantStage:     "inventory_set",
			wantListingID: 999,
			wantRemote:    `{"error":"price_on_property must include 513"}`,
		},
		{
			name:       "non-json remote payload is quoted",
			err:        &etsy.RemoteAPIError{Op: "getListing", StatusCode: http.StatusServiceUnavailable, Body: []byte("upstream down")},
			wantStatus: http.StatusServiceUnavailable,
			wantType:   ErrorTypeRemoteAPI,
			wantRemote: `"upstream down"`,
		},
		{
			name:       "token exchange rejected",
			err:        &etsy.AuthExchangeError{StatusCode: http.StatusBadRequest, Body: []byte(`{"error":"invalid_grant"}`)},
			wantStatus: http.StatusBadRequest,
			wantType:   ErrorTypeAuthExchange,
			wantRemote: `{"error":"invalid_grant"}`,
		},
		{
			name:       "token exchange without response",
			err:        &etsy.AuthExchangeError{Err: errors.New("connection refused")},
			wantStatus: http.StatusInternalServerError,
			wantType:   ErrorTypeAuthExchange,
		},
		{
			name:       "state mismatch",
			err:        etsy.ErrStateMismatch,
			wantStatus: http.StatusBadRequest,
			wantType:   ErrorTypeAuthState,
		},
		{
			name:       "no pending authorization",
			err:        etsy.ErrNoPendingAuthorization,
			wantStatus: http.StatusBadRequest,
			wantType:   ErrorTypeAuthState,
		},
		{
			name: "media fetch",
			err: &publish.StageError{
				Stage:     publish.StageMediaAttached,
				ListingID: 7,
				Err:       &media.FetchError{URL: "https://x.example/a.png", StatusCode: 404, Reason: "unexpected response"},
			},
			wantStatus:    http.StatusUnprocessableEntity,
			wantType:      ErrorTypeMediaFetch,
			wantStage:     "media_attached",
			wantListingID: 7,
		},
		{
			name:       "no taxonomy",
			err:        fmt.Errorf("listing 5: %w", publish.ErrNoTaxonomy),
			wantStatus: http.StatusUnprocessableEntity,
			wantType:   ErrorTypeNoTaxonomy,
		},
		{
			name:       "transport",
			err:        &etsy.TransportError{Op: "getListing", Err: context.DeadlineExceeded},
			wantStatus: http.StatusBadGateway,
			wantType:   ErrorTypeTransport,
		},
		{
			name:       "unclassified",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantType:   ErrorTypeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := toErrorResponse(tt.err)
			assert.Equal(t, tt.wantStatus, resp.GetStatus())
			assert.Equal(t, tt.wantType, resp.ErrorType)
			assert.Equal(t, tt.wantStage, resp.Stage)
			assert.Equal(t, tt.wantListingID, resp.ListingID)
			assert.Equal(t, tt.wantField, resp.Field)
			assert.Equal(t, tt.err.Error(), resp.Message)
			if tt.wantRemote == "" {
				assert.Empty(t, resp.Remote)
			} else {
				assert.JSONEq(t, tt.wantRemote, string(resp.Remote))
			}
		})
	}
}

func TestToErrorResponse_PassesThroughErrorResponse(t *testing.T) {
	t.Parallel()

	orig := invalidField("listing_id", "required")
	assert.Same(t, orig, toErrorResponse(orig))
}
