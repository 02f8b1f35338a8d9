package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/donaldgifford/etsy-bridge/internal/etsy"
	"github.com/donaldgifford/etsy-bridge/internal/media"
	"github.com/donaldgifford/etsy-bridge/internal/publish"
)

const testToken = "424242.test-token"

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func apiRequest(method, path, body string) *http.Request {
	var r io.Reader = http.NoBody
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, apiPrefix+path, r)
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set("x-api-key", "keystring")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

const validListing = `{"title":"Poster","description":"A poster","quantity":5,"price":12.5,` +
	`"who_made":"i_did","when_made":"made_to_order","taxonomy_id":2078}`

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		form       url.Values
		wantStatus int
		wantError  string
	}{
		{
			name: "authorization code",
			form: url.Values{
				"grant_type": {"authorization_code"}, "client_id": {"key"},
				"code": {"c"}, "code_verifier": {"v"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "refresh",
			form:       url.Values{"grant_type": {"refresh_token"}, "client_id": {"key"}, "refresh_token": {"r"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing client id",
			form:       url.Values{"grant_type": {"refresh_token"}, "refresh_token": {"r"}},
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid_client",
		},
		{
			name:       "missing verifier",
			form:       url.Values{"grant_type": {"authorization_code"}, "client_id": {"key"}, "code": {"c"}},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid_grant",
		},
		{
			name:       "unknown grant",
			form:       url.Values{"grant_type": {"password"}, "client_id": {"key"}},
			wantStatus: http.StatusBadRequest,
			wantError:  "unsupported_grant_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, tokenPath, strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := serve(newMockServer(testLogger()).routes(), req)

			require.Equal(t, tt.wantStatus, rec.Code)
			body := rec.Body.String()
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, gjson.Get(body, "error").String())
				return
			}
			assert.True(t, strings.HasPrefix(gjson.Get(body, "access_token").String(), "424242."))
			assert.NotEmpty(t, gjson.Get(body, "refresh_token").String())
			assert.Equal(t, int64(tokenLifetime), gjson.Get(body, "expires_in").Int())
		})
	}
}

func TestConnect(t *testing.T) {
	t.Parallel()

	h := newMockServer(testLogger()).routes()

	q := url.Values{
		"redirect_uri":          {"http://localhost:3000/callback"},
		"state":                 {"abc"},
		"code_challenge":        {"xyz"},
		"code_challenge_method": {"S256"},
	}
	rec := serve(h, httptest.NewRequest(http.MethodGet, connectPath+"?"+q.Encode(), http.NoBody))
	require.Equal(t, http.StatusFound, rec.Code)

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/callback", loc.Path)
	assert.Equal(t, "abc", loc.Query().Get("state"))
	assert.True(t, strings.HasPrefix(loc.Query().Get("code"), "mock-code-"))

	q.Del("code_challenge")
	rec = serve(h, httptest.NewRequest(http.MethodGet, connectPath+"?"+q.Encode(), http.NoBody))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	h := newMockServer(testLogger()).routes()

	req := apiRequest(http.MethodGet, "/shops/1/shipping-profiles", "")
	req.Header.Del("x-api-key")
	assert.Equal(t, http.StatusForbidden, serve(h, req).Code)

	req = apiRequest(http.MethodGet, "/shops/1/shipping-profiles", "")
	req.Header.Set("Authorization", "Bearer 1.someone-else")
	assert.Equal(t, http.StatusUnauthorized, serve(h, req).Code)

	req = apiRequest(http.MethodGet, "/shops/1/shipping-profiles", "")
	assert.Equal(t, http.StatusOK, serve(h, req).Code)
}

func TestCreateListing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantDesc   string
	}{
		{
			name:       "created as draft",
			path:       "/shops/77/listings",
			body:       validListing,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing required field",
			path:       "/shops/77/listings",
			body:       `{"title":"Poster"}`,
			wantStatus: http.StatusBadRequest,
			wantDesc:   "quantity is required",
		},
		{
			name:       "string taxonomy",
			path:       "/shops/77/listings",
			body:       strings.Replace(validListing, "2078", `"2078"`, 1),
			wantStatus: http.StatusBadRequest,
			wantDesc:   "taxonomy_id must be an integer",
		},
		{
			name:       "bad shop id",
			path:       "/shops/abc/listings",
			body:       validListing,
			wantStatus: http.StatusBadRequest,
			wantDesc:   "shop_id must be a positive integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(newMockServer(testLogger()).routes(), apiRequest(http.MethodPost, tt.path, tt.body))

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			body := rec.Body.String()
			if tt.wantDesc != "" {
				assert.Equal(t, tt.wantDesc, gjson.Get(body, "error_description").String())
				return
			}
			assert.Equal(t, int64(1000000001), gjson.Get(body, "listing_id").Int())
			assert.Equal(t, int64(77), gjson.Get(body, "shop_id").Int())
			assert.Equal(t, "draft", gjson.Get(body, "state").String())
			assert.Equal(t, "Poster", gjson.Get(body, "title").String())
		})
	}
}

func TestInventoryRoundTrip(t *testing.T) {
	t.Parallel()

	h := newMockServer(testLogger()).routes()

	rec := serve(h, apiRequest(http.MethodPost, "/shops/77/listings", validListing))
	require.Equal(t, http.StatusCreated, rec.Code)
	id := gjson.Get(rec.Body.String(), "listing_id").String()

	rec = serve(h, apiRequest(http.MethodPut, "/listings/"+id+"/inventory",
		`{"products":[{"sku":"A","offerings":[{"price":10,"quantity":1,"is_enabled":true}]}],"price_on_property":[513]}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotZero(t, gjson.Get(rec.Body.String(), "products.0.product_id").Int())

	rec = serve(h, apiRequest(http.MethodGet, "/listings/"+id+"?includes=Inventory", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "A", gjson.Get(rec.Body.String(), "inventory.products.0.sku").String())

	rec = serve(h, apiRequest(http.MethodGet, "/listings/"+id, ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, gjson.Get(rec.Body.String(), "inventory").Exists())

	rec = serve(h, apiRequest(http.MethodPut, "/listings/999/inventory", `{"products":[]}`))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, apiRequest(http.MethodPut, "/listings/"+id+"/inventory", `{"products":{}}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload(t *testing.T) {
	t.Parallel()

	h := newMockServer(testLogger()).routes()

	rec := serve(h, apiRequest(http.MethodPost, "/shops/77/listings", validListing))
	require.Equal(t, http.StatusCreated, rec.Code)
	id := gjson.Get(rec.Body.String(), "listing_id").String()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", "print.png")
	require.NoError(t, err)
	_, err = part.Write(pngBytes)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := apiRequest(http.MethodPost, "/shops/77/listings/"+id+"/images", "")
	req.Body = io.NopCloser(&buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	rec = serve(h, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := rec.Body.String()
	assert.NotZero(t, gjson.Get(body, "listing_image_id").Int())
	assert.Equal(t, int64(1), gjson.Get(body, "rank").Int())
	assert.Equal(t, "print.png", gjson.Get(body, "filename").String())
	assert.Equal(t, int64(len(pngBytes)), gjson.Get(body, "size_bytes").Int())

	req = apiRequest(http.MethodPost, "/shops/77/listings/"+id+"/videos", "")
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	req.Body = io.NopCloser(strings.NewReader("--x--\r\n"))
	rec = serve(h, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaxonomyProperties(t *testing.T) {
	t.Parallel()

	rec := serve(newMockServer(testLogger()).routes(),
		apiRequest(http.MethodGet, "/seller-taxonomy/nodes/2078/properties", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), gjson.Get(rec.Body.String(), "results.#").Int())
	assert.Equal(t, int64(2078), gjson.Get(rec.Body.String(), "results.0.taxonomy_id").Int())
}

// TestBridgeAgainstMock drives the bridge's auth flow, gateway and
// publication pipeline end to end against the mock.
func TestBridgeAgainstMock(t *testing.T) {
	t.Parallel()

	mock := httptest.NewServer(newMockServer(testLogger()).routes())
	t.Cleanup(mock.Close)

	files := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes)
	}))
	t.Cleanup(files.Close)

	ctx := context.Background()
	store := etsy.NewSessionStore()
	flow := etsy.NewAuthFlow("keystring", "http://localhost:3000/callback", store,
		etsy.WithAuthURL(mock.URL+connectPath),
		etsy.WithTokenURL(mock.URL+tokenPath),
		etsy.WithAuthLogger(testLogger()),
	)

	a, err := flow.Begin()
	require.NoError(t, err)

	noFollow := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	resp, err := noFollow.Get(a.URL)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	_, err = flow.Complete(ctx, loc.Query().Get("code"), loc.Query().Get("state"))
	require.NoError(t, err)
	require.True(t, store.Authenticated())

	tokens := etsy.NewSessionTokenProvider(store, etsy.WithRefresher(flow))
	gateway := etsy.NewClient(tokens, "keystring",
		etsy.WithBaseURL(mock.URL+apiPrefix),
		etsy.WithLogger(testLogger()),
	)
	pipeline := publish.NewPipeline(gateway, media.NewFetcher(media.WithLogger(testLogger())),
		publish.WithDefaultRoles(publish.DefaultPropertyRoles(513)),
		publish.WithLogger(testLogger()),
	)

	listing := strings.Replace(validListing, `"title"`, `"shop_id":"77","title"`, 1)
	res, err := pipeline.Run(ctx, &publish.Request{
		Listing:   json.RawMessage(listing),
		Inventory: json.RawMessage(`{"products":[{"sku":"P-1","offerings":[{"price":"19.99","quantity":"3","is_enabled":true}]}]}`),
		Media:     []publish.MediaItem{{Kind: publish.MediaImage, URL: files.URL + "/print.png"}},
	})
	require.NoError(t, err)

	assert.Equal(t, publish.StageComplete, res.Stage)
	assert.Equal(t, int64(1000000001), res.ListingID)
	assert.Equal(t, int64(3), gjson.GetBytes(res.InventoryResult, "products.0.offerings.0.quantity").Int())
	require.Len(t, res.MediaResult, 1)
	assert.Equal(t, int64(1), gjson.GetBytes(res.MediaResult[0], "rank").Int())

	props, err := pipeline.ResolveProperties(ctx, res.ListingID)
	require.NoError(t, err)
	require.NotNil(t, props.SizePropertyID)
	require.NotNil(t, props.PrintTypePropertyID)
	assert.Equal(t, int64(100), *props.SizePropertyID)
	assert.Equal(t, int64(514), *props.PrintTypePropertyID)
	assert.Equal(t, "P-1", gjson.GetBytes(props.Inventory, "products.0.sku").String())

	_, err = pipeline.CreateListing(ctx, json.RawMessage(`{"shop_id":77,"title":"Incomplete"}`))
	var remote *etsy.RemoteAPIError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusBadRequest, remote.StatusCode)
	assert.Equal(t, "invalid_request", gjson.GetBytes(remote.Body, "error").String())
}
