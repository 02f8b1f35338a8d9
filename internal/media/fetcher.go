// Package media downloads listing images and videos from remote URLs into
// memory so they can be re-uploaded to Etsy.
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/donaldgifford/etsy-bridge/internal/etsy"
	"github.com/donaldgifford/etsy-bridge/internal/metrics"
)

// Defaults for HTTPFetcher.
const (
	DefaultMaxBytes     = 100 << 20
	DefaultMaxRedirects = 5
	DefaultTimeout      = 60 * time.Second
	DefaultUserAgent    = "Mozilla/5.0 (compatible; etsy-bridge/1.0)"
)

// Fetcher retrieves remote media by URL.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*etsy.MediaFile, error)
}

var _ Fetcher = (*HTTPFetcher)(nil)

// HTTPFetcher downloads media over HTTP(S), rewriting known share links
// first and rejecting anything that does not sniff as an image or video.
type HTTPFetcher struct {
	client       *http.Client
	rewriters    []URLRewriter
	maxBytes     int64
	maxRedirects int
	userAgent    string
	log          *slog.Logger
}

// Option configures the HTTPFetcher.
type Option func(*HTTPFetcher)

// WithHTTPClient overrides the HTTP client. Its CheckRedirect is replaced.
func WithHTTPClient(c *http.Client) Option {
	return func(f *HTTPFetcher) {
		f.client = c
	}
}

// WithRewriters replaces DefaultRewriters.
func WithRewriters(r ...URLRewriter) Option {
	return func(f *HTTPFetcher) {
		f.rewriters = r
	}
}

// WithMaxBytes caps the size of a fetched file.
func WithMaxBytes(n int64) Option {
	return func(f *HTTPFetcher) {
		f.maxBytes = n
	}
}

// WithMaxRedirects caps how many redirects are followed.
func WithMaxRedirects(n int) Option {
	return func(f *HTTPFetcher) {
		f.maxRedirects = n
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) {
		f.userAgent = ua
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *HTTPFetcher) {
		f.log = l
	}
}

// NewFetcher creates an HTTPFetcher.
func NewFetcher(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client:       &http.Client{Timeout: DefaultTimeout},
		rewriters:    DefaultRewriters(),
		maxBytes:     DefaultMaxBytes,
		maxRedirects: DefaultMaxRedirects,
		userAgent:    DefaultUserAgent,
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}

	c := *f.client
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) > f.maxRedirects {
			return fmt.Errorf("stopped after %d redirects", f.maxRedirects)
		}
		req.Header.Set("User-Agent", f.userAgent)
		return nil
	}
	f.client = &c
	return f
}

// Fetch downloads rawURL into memory.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*etsy.MediaFile, error) {
	file, err := f.fetch(ctx, rawURL)
	if err != nil {
		metrics.MediaFetchesTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.MediaFetchesTotal.WithLabelValues("success").Inc()
	metrics.MediaFetchBytes.Observe(float64(len(file.Data)))
	return file, nil
}

func (f *HTTPFetcher) fetch(ctx context.Context, rawURL string) (*etsy.MediaFile, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &FetchError{URL: rawURL, Reason: "invalid media URL", Err: err}
	}

	u = f.rewrite(u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Reason: "creating request", Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "image/*,video/*,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: rawURL, StatusCode: resp.StatusCode, Reason: "unexpected response"}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, &FetchError{URL: rawURL, StatusCode: resp.StatusCode, Reason: "reading body", Err: err}
	}
	if int64(len(data)) > f.maxBytes {
		return nil, &FetchError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Reason:     fmt.Sprintf("larger than %d bytes", f.maxBytes),
		}
	}
	if len(data) == 0 {
		return nil, &FetchError{URL: rawURL, StatusCode: resp.StatusCode, Reason: "empty body"}
	}

	mt := mimetype.Detect(data)
	if !isMedia(mt) {
		return nil, &FetchError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Reason:     "content is " + mt.String() + ", not an image or video",
		}
	}

	name := filename(resp, u, mt)
	f.log.Debug("media fetched",
		"url", u.Redacted(),
		"bytes", len(data),
		"mime", mt.String(),
		"filename", name,
	)

	return &etsy.MediaFile{
		Data:     data,
		Filename: name,
		MimeType: baseMIME(mt.String()),
	}, nil
}

func (f *HTTPFetcher) rewrite(u *url.URL) *url.URL {
	for _, r := range f.rewriters {
		if out, ok := r.Rewrite(u); ok {
			return out
		}
	}
	return u
}

func isMedia(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		s := m.String()
		if strings.HasPrefix(s, "image/") || strings.HasPrefix(s, "video/") {
			return true
		}
	}
	return false
}

// baseMIME strips parameters such as charset.
func baseMIME(s string) string {
	base, _, _ := strings.Cut(s, ";")
	return strings.TrimSpace(base)
}

// filename prefers Content-Disposition, then the last URL path segment,
// and makes sure the name carries an extension matching the content.
func filename(resp *http.Response, u *url.URL, mt *mimetype.MIME) string {
	var name string
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			name = params["filename"]
		}
	}
	if name == "" {
		name = path.Base(u.Path)
	}
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "" || name == "." || name == "/" {
		name = "media"
	}
	if path.Ext(name) == "" {
		name += mt.Extension()
	}
	return name
}
