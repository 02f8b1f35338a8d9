package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// PublishResponse is the result of a completed publication.
type PublishResponse struct {
	Success         bool              `json:"success"`
	ListingID       int64             `json:"listing_id"`
	Stage           string            `json:"stage"`
	Listing         json.RawMessage   `json:"listing"`
	InventoryResult json.RawMessage   `json:"inventory_result,omitempty"`
	MediaResult     []json.RawMessage `json:"media_result,omitempty"`
}

// Publish sends a full publication request ({listing, inventory?, media?}).
func (c *Client) Publish(ctx context.Context, req json.RawMessage) (*PublishResponse, error) {
	var out PublishResponse
	if err := c.post(ctx, "/publish", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateListing creates a draft listing and returns Etsy's listing object.
func (c *Client) CreateListing(ctx context.Context, listing json.RawMessage) (json.RawMessage, error) {
	var out struct {
		Listing json.RawMessage `json:"listing"`
	}
	if err := c.post(ctx, "/create-listing", listing, &out); err != nil {
		return nil, err
	}
	return out.Listing, nil
}

// AuthStatus describes the bridge's Etsy session.
type AuthStatus struct {
	Authenticated bool       `json:"authenticated"`
	Expired       bool       `json:"expired"`
	Refreshable   bool       `json:"refreshable"`
	ObtainedAt    *time.Time `json:"obtained_at,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// AuthStatus reports whether the bridge holds an Etsy session.
func (c *Client) AuthStatus(ctx context.Context) (*AuthStatus, error) {
	var out AuthStatus
	if err := c.get(ctx, "/auth/status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Quota is the bridge's view of the daily Etsy API quota.
type Quota struct {
	DailyLimit int64      `json:"daily_limit"`
	DailyUsed  int64      `json:"daily_used"`
	Remaining  int64      `json:"remaining"`
	ResetAt    *time.Time `json:"reset_at,omitempty"`
}

// Quota returns the current daily quota usage.
func (c *Client) Quota(ctx context.Context) (*Quota, error) {
	var out Quota
	if err := c.get(ctx, "/quota", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShippingProfiles returns the shop's shipping profiles as Etsy sent them.
func (c *Client) ShippingProfiles(ctx context.Context, shopID int64) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.get(ctx, fmt.Sprintf("/shops/%d/shipping-profiles", shopID), &out); err != nil {
		return nil, err
	}
	return out, nil
}
