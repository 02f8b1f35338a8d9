package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/etsy-bridge/internal/api/handlers"
	"github.com/donaldgifford/etsy-bridge/internal/etsy"
	etsymocks "github.com/donaldgifford/etsy-bridge/internal/etsy/mocks"
)

func TestEtsyReadHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*etsymocks.MockGateway)
		wantStatus int
		wantBody   string
	}{
		{
			name: "shipping profiles",
			path: "/shops/123/shipping-profiles",
			setupMock: func(m *etsymocks.MockGateway) {
				m.EXPECT().GetShippingProfiles(mock.Anything, int64(123)).
					Return(json.RawMessage(`{"count":1,"results":[{"shipping_profile_id":77}]}`), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"shipping_profile_id":77`,
		},
		{
			name: "production partners",
			path: "/shops/123/production-partners",
			setupMock: func(m *etsymocks.MockGateway) {
				m.EXPECT().GetProductionPartners(mock.Anything, int64(123)).
					Return(json.RawMessage(`{"count":0,"results":[]}`), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"results":[]`,
		},
		{
			name: "listing",
			path: "/listings/42",
			setupMock: func(m *etsymocks.MockGateway) {
				m.EXPECT().GetListing(mock.Anything, int64(42)).
					Return(json.RawMessage(`{"listing_id":42,"inventory":{"products":[]}}`), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"listing_id":42`,
		},
		{
			name: "remote not found",
			path: "/listings/404",
			setupMock: func(m *etsymocks.MockGateway) {
				m.EXPECT().GetListing(mock.Anything, int64(404)).
					Return(nil, &etsy.RemoteAPIError{Op: "getListing", StatusCode: http.StatusNotFound, Body: []byte(`{"error":"Listing not found"}`)}).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `Listing not found`,
		},
		{
			name: "no session",
			path: "/shops/123/shipping-profiles",
			setupMock: func(m *etsymocks.MockGateway) {
				m.EXPECT().GetShippingProfiles(mock.Anything, int64(123)).Return(nil, etsy.ErrUnauthenticated).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `visit /auth first`,
		},
		{
			name:       "non-numeric shop id rejected by validation",
			path:       "/shops/abc/shipping-profiles",
			setupMock:  func(*etsymocks.MockGateway) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gw := etsymocks.NewMockGateway(t)
			tt.setupMock(gw)

			_, api := humatest.New(t)
			handlers.RegisterEtsyReadRoutes(api, handlers.NewEtsyReadHandler(gw))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
