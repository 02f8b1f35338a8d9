package etsy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/donaldgifford/etsy-bridge/internal/metrics"
)

const defaultBaseURL = "https://openapi.etsy.com/v3/application"

var _ Gateway = (*Client)(nil)

// Client implements Gateway against the Etsy Open API v3.
type Client struct {
	tokens      TokenProvider
	apiKey      string
	baseURL     string
	client      *http.Client
	rateLimiter *RateLimiter
	log         *slog.Logger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL overrides the default Open API base URL.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithAPIHTTPClient overrides the default HTTP client.
func WithAPIHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimiter makes every call wait on r before it is sent.
func WithRateLimiter(r *RateLimiter) ClientOption {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates an Etsy API client. apiKey is the app keystring sent as
// x-api-key on every call.
func NewClient(tokens TokenProvider, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		tokens:  tokens,
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateListing creates a draft listing in the shop.
func (c *Client) CreateListing(
	ctx context.Context,
	shopID int64,
	fields json.RawMessage,
) (json.RawMessage, error) {
	return c.doJSON(ctx, "createDraftListing", http.MethodPost,
		fmt.Sprintf("/shops/%d/listings", shopID), nil, fields)
}

// UpdateInventory replaces a listing's inventory.
func (c *Client) UpdateInventory(
	ctx context.Context,
	update *InventoryUpdate,
) (json.RawMessage, error) {
	body, err := json.Marshal(update)
	if err != nil {
		return nil, fmt.Errorf("encoding inventory update: %w", err)
	}
	return c.doJSON(ctx, "updateListingInventory", http.MethodPut,
		fmt.Sprintf("/listings/%d/inventory", update.ListingID), nil, body)
}

// GetListing fetches a listing including its inventory.
func (c *Client) GetListing(ctx context.Context, listingID int64) (json.RawMessage, error) {
	q := url.Values{"includes": {"Inventory"}}
	return c.doJSON(ctx, "getListing", http.MethodGet,
		fmt.Sprintf("/listings/%d", listingID), q, nil)
}

// GetShippingProfiles lists the shop's shipping profiles.
func (c *Client) GetShippingProfiles(ctx context.Context, shopID int64) (json.RawMessage, error) {
	return c.doJSON(ctx, "getShopShippingProfiles", http.MethodGet,
		fmt.Sprintf("/shops/%d/shipping-profiles", shopID), nil, nil)
}

// GetProductionPartners lists the shop's production partners.
func (c *Client) GetProductionPartners(
	ctx context.Context,
	shopID int64,
) (json.RawMessage, error) {
	return c.doJSON(ctx, "getShopProductionPartners", http.MethodGet,
		fmt.Sprintf("/shops/%d/production-partners", shopID), nil, nil)
}

// GetTaxonomyProperties lists the properties allowed for a seller taxonomy node.
func (c *Client) GetTaxonomyProperties(
	ctx context.Context,
	taxonomyID int64,
) (json.RawMessage, error) {
	return c.doJSON(ctx, "getPropertiesByTaxonomyId", http.MethodGet,
		fmt.Sprintf("/seller-taxonomy/nodes/%d/properties", taxonomyID), nil, nil)
}

// UploadImage attaches an image to a listing.
func (c *Client) UploadImage(
	ctx context.Context,
	shopID, listingID int64,
	file *MediaFile,
) (json.RawMessage, error) {
	return c.upload(ctx, "uploadListingImage", "image",
		fmt.Sprintf("/shops/%d/listings/%d/images", shopID, listingID), file, nil)
}

// UploadVideo attaches a video to a listing.
func (c *Client) UploadVideo(
	ctx context.Context,
	shopID, listingID int64,
	file *MediaFile,
) (json.RawMessage, error) {
	return c.upload(ctx, "uploadListingVideo", "video",
		fmt.Sprintf("/shops/%d/listings/%d/videos", shopID, listingID), file,
		map[string]string{"name": file.Filename})
}

func (c *Client) upload(
	ctx context.Context,
	op, field, path string,
	file *MediaFile,
	extra map[string]string,
) (json.RawMessage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range extra {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("writing %s field: %w", k, err)
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(
		`form-data; name=%q; filename=%q`, field, file.Filename,
	))
	mimeType := file.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	h.Set("Content-Type", mimeType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("creating %s part: %w", field, err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, fmt.Errorf("writing %s part: %w", field, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	return c.do(ctx, op, http.MethodPost, path, nil, &buf, w.FormDataContentType())
}

func (c *Client) doJSON(
	ctx context.Context,
	op, method, path string,
	query url.Values,
	body []byte,
) (json.RawMessage, error) {
	if body == nil {
		return c.do(ctx, op, method, path, query, nil, "")
	}
	return c.do(ctx, op, method, path, query, bytes.NewReader(body), "application/json")
}

func (c *Client) do(
	ctx context.Context,
	op, method, path string,
	query url.Values,
	body io.Reader,
	contentType string,
) (json.RawMessage, error) {
	// The token check comes first: no session means no I/O at all.
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.EtsyDailyLimitHits.Inc()
				return nil, err
			}
			return nil, &TransportError{Op: op, Err: err}
		}
		metrics.EtsyDailyUsage.Set(float64(c.rateLimiter.Status().Used))
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	if body == nil {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", op, err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.EtsyAPICallsTotal.WithLabelValues(op, "transport_error").Inc()
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.EtsyAPICallsTotal.WithLabelValues(op, "transport_error").Inc()
		return nil, &TransportError{Op: op, Err: fmt.Errorf("reading response body: %w", err)}
	}

	metrics.EtsyAPICallsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.EtsyAPIDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	c.log.Debug("etsy call",
		"op", op,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RemoteAPIError{Op: op, StatusCode: resp.StatusCode, Body: respBody}
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !gjson.ValidBytes(respBody) {
		return nil, fmt.Errorf("parsing %s response: invalid JSON", op)
	}
	return json.RawMessage(respBody), nil
}
