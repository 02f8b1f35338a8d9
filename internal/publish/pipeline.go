// Package publish turns a caller's listing request into a published Etsy
// listing: field normalization, draft creation, inventory, and media.
package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/donaldgifford/etsy-bridge/internal/etsy"
	"github.com/donaldgifford/etsy-bridge/internal/media"
	"github.com/donaldgifford/etsy-bridge/internal/metrics"
)

// MediaKind is the type of a media attachment.
type MediaKind string

// Media kinds.
const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaItem is a remote file to attach to a listing. For videos, ImageURL
// optionally names a companion image uploaded before the video.
type MediaItem struct {
	Kind     MediaKind `json:"kind" enum:"image,video" doc:"Attachment type"`
	URL      string    `json:"url" doc:"Remote file URL"`
	ImageURL string    `json:"image_url,omitempty" doc:"Companion image for a video"`
}

// Request is a full publication request.
type Request struct {
	Listing   json.RawMessage
	Inventory json.RawMessage
	Media     []MediaItem
}

// Result is the aggregated outcome of a completed publication.
type Result struct {
	ListingID       int64             `json:"listing_id"`
	Stage           Stage             `json:"stage"`
	Listing         json.RawMessage   `json:"listing"`
	InventoryResult json.RawMessage   `json:"inventory_result,omitempty"`
	MediaResult     []json.RawMessage `json:"media_result,omitempty"`
}

// Pipeline drives the publication stages strictly in order against the
// gateway. It holds no per-request state and is safe for concurrent use.
type Pipeline struct {
	gateway etsy.Gateway
	fetcher media.Fetcher
	roles   PropertyRoles
	log     *slog.Logger
}

// Option configures the Pipeline.
type Option func(*Pipeline)

// WithDefaultRoles sets the property roles used when a request omits them.
func WithDefaultRoles(r PropertyRoles) Option {
	return func(p *Pipeline) {
		p.roles = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}

// NewPipeline creates a Pipeline.
func NewPipeline(gateway etsy.Gateway, fetcher media.Fetcher, opts ...Option) *Pipeline {
	p := &Pipeline{
		gateway: gateway,
		fetcher: fetcher,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes every stage of req. Inventory and media stages are skipped
// when the request carries none. The returned error is always a *StageError;
// after creation it carries the new listing ID. Nothing is rolled back.
func (p *Pipeline) Run(ctx context.Context, req *Request) (*Result, error) {
	listing, shopID, err := NormalizeListing(req.Listing)
	if err != nil {
		return nil, p.fail(StageNormalized, 0, err)
	}

	var update *etsy.InventoryUpdate
	if hasValue(req.Inventory) {
		if update, err = normalizeInventoryBody(req.Inventory, p.roles); err != nil {
			return nil, p.fail(StageNormalized, 0, err)
		}
	}
	for i, item := range req.Media {
		if err := validateMediaItem(i, item); err != nil {
			return nil, p.fail(StageNormalized, 0, err)
		}
	}

	created, listingID, err := p.create(ctx, shopID, listing)
	if err != nil {
		return nil, err
	}

	res := &Result{ListingID: listingID, Listing: created}

	if update != nil {
		update.ListingID = listingID
		inv, err := p.gateway.UpdateInventory(ctx, update)
		if err != nil {
			return nil, p.fail(StageInventorySet, listingID, err)
		}
		res.InventoryResult = inv
	}

	for _, item := range req.Media {
		out, err := p.attachRemote(ctx, shopID, listingID, item)
		if err != nil {
			return nil, p.fail(StageMediaAttached, listingID, err)
		}
		res.MediaResult = append(res.MediaResult, out...)
	}

	res.Stage = StageComplete
	metrics.PublishCompletedTotal.Inc()
	p.log.Info("listing published",
		"listing_id", listingID,
		"shop_id", shopID,
		"inventory", update != nil,
		"media", len(req.Media),
	)
	return res, nil
}

// CreateListing normalizes raw and creates a draft listing from it.
func (p *Pipeline) CreateListing(ctx context.Context, raw json.RawMessage) (json.RawMessage, error) {
	listing, shopID, err := NormalizeListing(raw)
	if err != nil {
		return nil, p.fail(StageNormalized, 0, err)
	}
	created, _, err := p.create(ctx, shopID, listing)
	return created, err
}

// UpdateInventory normalizes an update-inventory body and sends it.
func (p *Pipeline) UpdateInventory(ctx context.Context, raw json.RawMessage) (json.RawMessage, error) {
	update, err := NormalizeInventory(raw, p.roles)
	if err != nil {
		return nil, p.fail(StageNormalized, 0, err)
	}
	out, err := p.gateway.UpdateInventory(ctx, update)
	if err != nil {
		return nil, p.fail(StageInventorySet, update.ListingID, err)
	}
	return out, nil
}

// AttachImage uploads an image to an existing listing.
func (p *Pipeline) AttachImage(
	ctx context.Context,
	shopID, listingID int64,
	file *etsy.MediaFile,
) (json.RawMessage, error) {
	out, err := p.gateway.UploadImage(ctx, shopID, listingID, file)
	if err != nil {
		return nil, p.fail(StageMediaAttached, listingID, err)
	}
	return out, nil
}

// AttachVideo uploads a video to an existing listing. A non-empty imageURL is
// fetched and uploaded as an image first; if that fails the video is not
// uploaded.
func (p *Pipeline) AttachVideo(
	ctx context.Context,
	shopID, listingID int64,
	video *etsy.MediaFile,
	imageURL string,
) ([]json.RawMessage, error) {
	out, err := p.attachVideo(ctx, shopID, listingID, video, imageURL)
	if err != nil {
		return nil, p.fail(StageMediaAttached, listingID, err)
	}
	return out, nil
}

func (p *Pipeline) create(
	ctx context.Context,
	shopID int64,
	listing json.RawMessage,
) (json.RawMessage, int64, error) {
	created, err := p.gateway.CreateListing(ctx, shopID, listing)
	if err != nil {
		return nil, 0, p.fail(StageCreated, 0, err)
	}

	id := gjson.GetBytes(created, "listing_id")
	if id.Type != gjson.Number || id.Int() == 0 {
		return nil, 0, p.fail(StageCreated, 0,
			errors.New("createDraftListing response has no listing_id"))
	}
	return created, id.Int(), nil
}

// attachRemote fetches item and uploads it.
func (p *Pipeline) attachRemote(
	ctx context.Context,
	shopID, listingID int64,
	item MediaItem,
) ([]json.RawMessage, error) {
	file, err := p.fetcher.Fetch(ctx, item.URL)
	if err != nil {
		return nil, err
	}

	if item.Kind == MediaVideo {
		return p.attachVideo(ctx, shopID, listingID, file, item.ImageURL)
	}

	out, err := p.gateway.UploadImage(ctx, shopID, listingID, file)
	if err != nil {
		return nil, err
	}
	return []json.RawMessage{out}, nil
}

func (p *Pipeline) attachVideo(
	ctx context.Context,
	shopID, listingID int64,
	video *etsy.MediaFile,
	imageURL string,
) ([]json.RawMessage, error) {
	var results []json.RawMessage

	if imageURL != "" {
		img, err := p.fetcher.Fetch(ctx, imageURL)
		if err != nil {
			return nil, err
		}
		out, err := p.gateway.UploadImage(ctx, shopID, listingID, img)
		if err != nil {
			return nil, err
		}
		results = append(results, out)
	}

	out, err := p.gateway.UploadVideo(ctx, shopID, listingID, video)
	if err != nil {
		return nil, err
	}
	return append(results, out), nil
}

// fail records a stage failure and wraps err.
func (p *Pipeline) fail(stage Stage, listingID int64, err error) error {
	metrics.PublishStageFailuresTotal.WithLabelValues(string(stage)).Inc()
	p.log.Warn("publication stage failed",
		"stage", stage,
		"listing_id", listingID,
		"error", err,
	)
	return &StageError{Stage: stage, ListingID: listingID, Err: err}
}

func validateMediaItem(i int, item MediaItem) error {
	field := func(name string) string { return fmt.Sprintf("media[%d].%s", i, name) }

	if item.URL == "" {
		return &InvalidFieldError{Field: field("url"), Reason: "required"}
	}
	switch item.Kind {
	case MediaImage:
		if item.ImageURL != "" {
			return &InvalidFieldError{Field: field("image_url"), Reason: "only allowed for video"}
		}
	case MediaVideo:
	default:
		return &InvalidFieldError{Field: field("kind"), Reason: `must be "image" or "video"`}
	}
	return nil
}

func hasValue(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	return gjson.ParseBytes(raw).Type != gjson.Null
}
