package publish_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/etsy-bridge/internal/etsy"
	etsymocks "github.com/donaldgifford/etsy-bridge/internal/etsy/mocks"
	mediamocks "github.com/donaldgifford/etsy-bridge/internal/media/mocks"
	"github.com/donaldgifford/etsy-bridge/internal/publish"
)

func TestPipeline_ResolveProperties(t *testing.T) {
	t.Parallel()

	listing := json.RawMessage(`{
		"listing_id": 555,
		"taxonomy_id": 2078,
		"inventory": {"products": [{"product_id": 1}]}
	}`)

	tests := []struct {
		name          string
		props         string
		wantSize      *int64
		wantPrintType *int64
	}{
		{
			name: "mixed case names",
			props: `{"count":3,"results":[
				{"property_id":100,"name":"Color"},
				{"property_id":513,"name":"Size"},
				{"property_id":514,"name":"Print Type"}
			]}`,
			wantSize:      ptr(513),
			wantPrintType: ptr(514),
		},
		{
			name: "no size property",
			props: `{"count":1,"results":[
				{"property_id":514,"name":"PRINT TYPE"}
			]}`,
			wantPrintType: ptr(514),
		},
		{
			name:  "empty results",
			props: `{"count":0,"results":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gw := etsymocks.NewMockGateway(t)
			gw.EXPECT().GetListing(mock.Anything, int64(555)).Return(listing, nil).Once()
			gw.EXPECT().GetTaxonomyProperties(mock.Anything, int64(2078)).
				Return(json.RawMessage(tt.props), nil).Once()

			p := newPipeline(gw, mediamocks.NewMockFetcher(t))
			res, err := p.ResolveProperties(context.Background(), 555)
			require.NoError(t, err)

			assert.Equal(t, int64(555), res.ListingID)
			assert.Equal(t, int64(2078), res.TaxonomyID)
			assert.Equal(t, tt.wantSize, res.SizePropertyID)
			assert.Equal(t, tt.wantPrintType, res.PrintTypePropertyID)
			assert.JSONEq(t, `{"products": [{"product_id": 1}]}`, string(res.Inventory))
		})
	}
}

func TestPipeline_ResolveProperties_Errors(t *testing.T) {
	t.Parallel()

	t.Run("listing without taxonomy", func(t *testing.T) {
		t.Parallel()

		gw := etsymocks.NewMockGateway(t)
		gw.EXPECT().GetListing(mock.Anything, int64(1)).
			Return(json.RawMessage(`{"listing_id":1}`), nil).Once()

		_, err := newPipeline(gw, mediamocks.NewMockFetcher(t)).ResolveProperties(context.Background(), 1)
		require.ErrorIs(t, err, publish.ErrNoTaxonomy)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()

		gw := etsymocks.NewMockGateway(t)
		gw.EXPECT().GetListing(mock.Anything, int64(1)).Return(nil, etsy.ErrUnauthenticated).Once()

		_, err := newPipeline(gw, mediamocks.NewMockFetcher(t)).ResolveProperties(context.Background(), 1)
		require.ErrorIs(t, err, etsy.ErrUnauthenticated)
	})
}

func ptr(v int64) *int64 { return &v }
