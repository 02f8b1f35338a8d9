package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/donaldgifford/etsy-bridge/internal/etsy"
)

// UploadHandler accepts multipart image and video uploads for existing
// listings.
type UploadHandler struct {
	publisher     Publisher
	defaultShopID int64
	maxBytes      int64
	log           *slog.Logger
}

// NewUploadHandler creates a new UploadHandler. defaultShopID is used when a
// request carries no shop_id; maxBytes caps each uploaded file.
func NewUploadHandler(p Publisher, defaultShopID, maxBytes int64, log *slog.Logger) *UploadHandler {
	return &UploadHandler{
		publisher:     p,
		defaultShopID: defaultShopID,
		maxBytes:      maxBytes,
		log:           log,
	}
}

// UploadImage attaches the "image" part to listing_id.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	shopID, listingID, err := h.target(c)
	if err != nil {
		return writeError(c, err)
	}

	file, err := h.readPart(c, "image", "image/")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.publisher.AttachImage(c.Request().Context(), shopID, listingID, file)
	if err != nil {
		return writeError(c, err)
	}

	h.log.Info("image uploaded", "listing_id", listingID, "filename", file.Filename, "bytes", len(file.Data))
	return c.JSON(http.StatusOK, map[string]any{"success": true, "image": out})
}

// UploadVideo attaches the "video" part to listing_id. A non-empty image_url
// is fetched and uploaded as an image before the video.
func (h *UploadHandler) UploadVideo(c echo.Context) error {
	shopID, listingID, err := h.target(c)
	if err != nil {
		return writeError(c, err)
	}

	file, err := h.readPart(c, "video", "video/")
	if err != nil {
		return writeError(c, err)
	}

	results, err := h.publisher.AttachVideo(
		c.Request().Context(), shopID, listingID, file, strings.TrimSpace(c.FormValue("image_url")),
	)
	if err != nil {
		return writeError(c, err)
	}

	h.log.Info("video uploaded", "listing_id", listingID, "filename", file.Filename, "bytes", len(file.Data))
	return c.JSON(http.StatusOK, map[string]any{"success": true, "results": results})
}

// target reads the shop and listing IDs from the form.
func (h *UploadHandler) target(c echo.Context) (shopID, listingID int64, err error) {
	listingID, err = formInt(c, "listing_id")
	if err != nil {
		return 0, 0, err
	}
	if listingID == 0 {
		return 0, 0, invalidField("listing_id", "required")
	}

	shopID, err = formInt(c, "shop_id")
	if err != nil {
		return 0, 0, err
	}
	if shopID == 0 {
		shopID = h.defaultShopID
	}
	if shopID == 0 {
		return 0, 0, invalidField("shop_id", "required when no default shop is configured")
	}
	return shopID, listingID, nil
}

// readPart loads the named file part and checks its sniffed type against
// wantPrefix. The client's Content-Type header is not trusted.
func (h *UploadHandler) readPart(c echo.Context, field, wantPrefix string) (*etsy.MediaFile, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, invalidField(field, "file part is required")
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		resp := newErrorResponse(http.StatusRequestEntityTooLarge, ErrorTypeInvalidField,
			fmt.Sprintf("%s is larger than %d bytes", field, h.maxBytes))
		resp.Field = field
		return nil, resp
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s part: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s part: %w", field, err)
	}
	if len(data) == 0 {
		return nil, invalidField(field, "file is empty")
	}

	mt := mimetype.Detect(data)
	if !hasMIMEPrefix(mt, wantPrefix) {
		return nil, invalidField(field, fmt.Sprintf("content is %s, want %s*", mt.String(), wantPrefix))
	}

	name := fh.Filename
	if name == "" {
		name = field + mt.Extension()
	}
	return &etsy.MediaFile{Data: data, Filename: name, MimeType: mt.String()}, nil
}

func hasMIMEPrefix(mt *mimetype.MIME, prefix string) bool {
	for m := mt; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), prefix) {
			return true
		}
	}
	return false
}

// formInt parses an optional decimal integer form value. Missing values
// are zero.
func formInt(c echo.Context, name string) (int64, error) {
	v := strings.TrimSpace(c.FormValue(name))
	if v == "" {
		return 0, nil
	}
	// cast parses with base 0, so only plain digits reach it and leading
	// zeros are dropped. That rules out 0x, 0o, underscores and octal.
	if strings.Trim(v, "0123456789") != "" {
		return 0, invalidField(name, "must be a positive integer")
	}
	v = strings.TrimLeft(v, "0")
	if v == "" {
		return 0, nil
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, invalidField(name, "must be a positive integer")
	}
	return n, nil
}

func invalidField(field, reason string) *ErrorResponse {
	resp := newErrorResponse(http.StatusBadRequest, ErrorTypeInvalidField,
		fmt.Sprintf("invalid field %s: %s", field, reason))
	resp.Field = field
	return resp
}

// RegisterUploadRoutes registers the multipart upload endpoints on e.
func RegisterUploadRoutes(e *echo.Echo, h *UploadHandler) {
	e.POST("/upload-image", h.UploadImage)
	e.POST("/upload-video", h.UploadVideo)
}
