// Package etsy provides the authenticated Etsy Open API v3 gateway, the
// OAuth 2.0 Authorization Code + PKCE flow, and the in-memory session it
// maintains.
package etsy

import (
	"context"
	"encoding/json"
)

// Gateway is the single chokepoint for authenticated Etsy calls. Every
// method performs exactly one remote call and returns the 2xx payload as
// received. Without a session every method fails with ErrUnauthenticated.
type Gateway interface {
	CreateListing(ctx context.Context, shopID int64, fields json.RawMessage) (json.RawMessage, error)
	UpdateInventory(ctx context.Context, update *InventoryUpdate) (json.RawMessage, error)
	GetListing(ctx context.Context, listingID int64) (json.RawMessage, error)
	GetShippingProfiles(ctx context.Context, shopID int64) (json.RawMessage, error)
	GetProductionPartners(ctx context.Context, shopID int64) (json.RawMessage, error)
	GetTaxonomyProperties(ctx context.Context, taxonomyID int64) (json.RawMessage, error)
	UploadImage(ctx context.Context, shopID, listingID int64, file *MediaFile) (json.RawMessage, error)
	UploadVideo(ctx context.Context, shopID, listingID int64, file *MediaFile) (json.RawMessage, error)
}

// TokenProvider supplies the bearer token for authenticated calls.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
