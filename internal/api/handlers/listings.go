package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/etsy-bridge/internal/etsy"
	"github.com/donaldgifford/etsy-bridge/internal/publish"
)

// Publisher runs the listing publication stages.
type Publisher interface {
	CreateListing(ctx context.Context, raw json.RawMessage) (json.RawMessage, error)
	UpdateInventory(ctx context.Context, raw json.RawMessage) (json.RawMessage, error)
	Run(ctx context.Context, req *publish.Request) (*publish.Result, error)
	AttachImage(ctx context.Context, shopID, listingID int64, file *etsy.MediaFile) (json.RawMessage, error)
	AttachVideo(
		ctx context.Context,
		shopID, listingID int64,
		video *etsy.MediaFile,
		imageURL string,
	) ([]json.RawMessage, error)
	ResolveProperties(ctx context.Context, listingID int64) (*publish.PropertyResolution, error)
}

// ListingHandler serves the listing publication endpoints. Request bodies
// are read raw so fields the bridge does not know reach Etsy untouched.
type ListingHandler struct {
	publisher Publisher
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(p Publisher) *ListingHandler {
	return &ListingHandler{publisher: p}
}

// RawBodyInput carries a JSON request body as received.
type RawBodyInput struct {
	RawBody []byte
}

// CreateListingOutput is the response body for the create-listing endpoint.
type CreateListingOutput struct {
	Body struct {
		Success bool            `json:"success" doc:"Always true on success"`
		Listing json.RawMessage `json:"listing" doc:"Draft listing as returned by Etsy"`
	}
}

// CreateListing normalizes the listing fields and creates a draft listing.
func (h *ListingHandler) CreateListing(ctx context.Context, in *RawBodyInput) (*CreateListingOutput, error) {
	listing, err := h.publisher.CreateListing(ctx, in.RawBody)
	if err != nil {
		return nil, toErrorResponse(err)
	}

	out := &CreateListingOutput{}
	out.Body.Success = true
	out.Body.Listing = listing
	return out, nil
}

// UpdateInventoryOutput is the response body for the update-inventory endpoint.
type UpdateInventoryOutput struct {
	Body struct {
		Success   bool            `json:"success" doc:"Always true on success"`
		Inventory json.RawMessage `json:"inventory" doc:"Inventory as returned by Etsy"`
	}
}

// UpdateInventory replaces a listing's inventory.
func (h *ListingHandler) UpdateInventory(
	ctx context.Context,
	in *RawBodyInput,
) (*UpdateInventoryOutput, error) {
	inv, err := h.publisher.UpdateInventory(ctx, in.RawBody)
	if err != nil {
		return nil, toErrorResponse(err)
	}

	out := &UpdateInventoryOutput{}
	out.Body.Success = true
	out.Body.Inventory = inv
	return out, nil
}

// publishBody is the full publication request.
type publishBody struct {
	Listing   json.RawMessage     `json:"listing"`
	Inventory json.RawMessage     `json:"inventory,omitempty"`
	Media     []publish.MediaItem `json:"media,omitempty"`
}

// PublishOutput is the response body for the publish endpoint.
type PublishOutput struct {
	Body struct {
		Success         bool              `json:"success" doc:"Always true on success"`
		ListingID       int64             `json:"listing_id" doc:"Created listing ID"`
		Stage           publish.Stage     `json:"stage" doc:"Last stage reached"`
		Listing         json.RawMessage   `json:"listing" doc:"Draft listing as returned by Etsy"`
		InventoryResult json.RawMessage   `json:"inventory_result,omitempty" doc:"Inventory as returned by Etsy"`
		MediaResult     []json.RawMessage `json:"media_result,omitempty" doc:"Upload results in request order"`
	}
}

// Publish runs every publication stage for one listing.
func (h *ListingHandler) Publish(ctx context.Context, in *RawBodyInput) (*PublishOutput, error) {
	var body publishBody
	if err := json.Unmarshal(in.RawBody, &body); err != nil {
		resp := newErrorResponse(http.StatusBadRequest, ErrorTypeInvalidField,
			"request body must be a JSON object with a listing: "+err.Error())
		resp.Field = "body"
		return nil, resp
	}

	res, err := h.publisher.Run(ctx, &publish.Request{
		Listing:   body.Listing,
		Inventory: body.Inventory,
		Media:     body.Media,
	})
	if err != nil {
		return nil, toErrorResponse(err)
	}

	out := &PublishOutput{}
	out.Body.Success = true
	out.Body.ListingID = res.ListingID
	out.Body.Stage = res.Stage
	out.Body.Listing = res.Listing
	out.Body.InventoryResult = res.InventoryResult
	out.Body.MediaResult = res.MediaResult
	return out, nil
}

// ListingIDInput identifies a listing in the path.
type ListingIDInput struct {
	ListingID int64 `path:"listing_id" minimum:"1" doc:"Etsy listing ID" example:"1234567890"`
}

// PropertyResolutionOutput is the response body for the size-property endpoint.
type PropertyResolutionOutput struct {
	Body *publish.PropertyResolution
}

// SizeProperty resolves the size and print type property IDs of a listing's
// taxonomy.
func (h *ListingHandler) SizeProperty(
	ctx context.Context,
	in *ListingIDInput,
) (*PropertyResolutionOutput, error) {
	res, err := h.publisher.ResolveProperties(ctx, in.ListingID)
	if err != nil {
		return nil, toErrorResponse(err)
	}
	return &PropertyResolutionOutput{Body: res}, nil
}

// RegisterListingRoutes registers the publication endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-listing",
		Method:      http.MethodPost,
		Path:        "/create-listing",
		Summary:     "Create a draft listing",
		Description: "Coerces identifier fields to integers and creates a draft listing " +
			"in the shop named by shop_id. Etsy validation errors are returned as received.",
		Tags:   []string{"listings"},
		Errors: []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusBadGateway},
	}, h.CreateListing)

	huma.Register(api, huma.Operation{
		OperationID: "update-inventory",
		Method:      http.MethodPost,
		Path:        "/update-inventory",
		Summary:     "Replace a listing's inventory",
		Description: "Sends products with their offerings and the property roles " +
			"that price, quantity and SKU vary by.",
		Tags:   []string{"listings"},
		Errors: []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusBadGateway},
	}, h.UpdateInventory)

	huma.Register(api, huma.Operation{
		OperationID: "publish-listing",
		Method:      http.MethodPost,
		Path:        "/publish",
		Summary:     "Publish a listing",
		Description: "Creates the listing, sets its inventory and attaches remote media in order. " +
			"A failure reports the stage and, once created, the listing ID. Nothing is rolled back.",
		Tags: []string{"listings"},
		Errors: []int{
			http.StatusBadRequest,
			http.StatusUnauthorized,
			http.StatusUnprocessableEntity,
			http.StatusBadGateway,
		},
	}, h.Publish)

	huma.Register(api, huma.Operation{
		OperationID: "get-size-property",
		Method:      http.MethodGet,
		Path:        "/listings/{listing_id}/size-property-id",
		Summary:     "Resolve variation property IDs",
		Description: "Looks up the listing's taxonomy and returns the IDs of its " +
			"size and print type properties, plus the current inventory.",
		Tags:   []string{"listings"},
		Errors: []int{http.StatusUnauthorized, http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.SizeProperty)
}
