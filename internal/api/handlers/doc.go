// Package handlers implements the HTTP endpoints of the etsy-bridge API:
// the authorization redirect and callback, the listing publication
// endpoints, and the read-only Etsy passthroughs.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
