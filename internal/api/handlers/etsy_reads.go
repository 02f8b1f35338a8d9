package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/etsy-bridge/internal/etsy"
)

// EtsyReadHandler passes read-only Etsy lookups through unchanged.
type EtsyReadHandler struct {
	gateway etsy.Gateway
}

// NewEtsyReadHandler creates a new EtsyReadHandler.
func NewEtsyReadHandler(gw etsy.Gateway) *EtsyReadHandler {
	return &EtsyReadHandler{gateway: gw}
}

// ShopIDInput identifies a shop in the path.
type ShopIDInput struct {
	ShopID int64 `path:"shop_id" minimum:"1" doc:"Etsy shop ID" example:"12345678"`
}

// RawOutput is an Etsy payload returned as received.
type RawOutput struct {
	Body json.RawMessage
}

// ShippingProfiles lists the shop's shipping profiles.
func (h *EtsyReadHandler) ShippingProfiles(ctx context.Context, in *ShopIDInput) (*RawOutput, error) {
	return passthrough(h.gateway.GetShippingProfiles(ctx, in.ShopID))
}

// ProductionPartners lists the shop's production partners.
func (h *EtsyReadHandler) ProductionPartners(ctx context.Context, in *ShopIDInput) (*RawOutput, error) {
	return passthrough(h.gateway.GetProductionPartners(ctx, in.ShopID))
}

// Listing returns a listing with its inventory.
func (h *EtsyReadHandler) Listing(ctx context.Context, in *ListingIDInput) (*RawOutput, error) {
	return passthrough(h.gateway.GetListing(ctx, in.ListingID))
}

func passthrough(body json.RawMessage, err error) (*RawOutput, error) {
	if err != nil {
		return nil, toErrorResponse(err)
	}
	return &RawOutput{Body: body}, nil
}

// RegisterEtsyReadRoutes registers the passthrough endpoints with the Huma API.
func RegisterEtsyReadRoutes(api huma.API, h *EtsyReadHandler) {
	errs := []int{http.StatusUnauthorized, http.StatusBadGateway}

	huma.Register(api, huma.Operation{
		OperationID: "get-shipping-profiles",
		Method:      http.MethodGet,
		Path:        "/shops/{shop_id}/shipping-profiles",
		Summary:     "List shipping profiles",
		Description: "Returns the shop's shipping profiles as Etsy sends them.",
		Tags:        []string{"shops"},
		Errors:      errs,
	}, h.ShippingProfiles)

	huma.Register(api, huma.Operation{
		OperationID: "get-production-partners",
		Method:      http.MethodGet,
		Path:        "/shops/{shop_id}/production-partners",
		Summary:     "List production partners",
		Tags:        []string{"shops"},
		Errors:      errs,
	}, h.ProductionPartners)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/listings/{listing_id}",
		Summary:     "Get a listing",
		Description: "Returns the listing including its inventory.",
		Tags:        []string{"listings"},
		Errors:      errs,
	}, h.Listing)
}
