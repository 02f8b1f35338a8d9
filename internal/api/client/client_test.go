package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.AuthStatus(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "etsy-bridge not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	body := `{"error":"inventory failed","error_type":"remote_api","stage":"inventory_set","listing_id":999}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Publish(context.Background(), json.RawMessage(`{"listing":{}}`))
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.JSONEq(t, body, string(apiErr.Body))
	assert.Contains(t, err.Error(), "API error (HTTP 400)")
}

func TestClient_Publish(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/publish", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		got, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"listing":{"shop_id":123,"title":"Poster"}}`, string(got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"listing_id":999,"stage":"complete","listing":{"listing_id":999}}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Publish(context.Background(),
		json.RawMessage(`{"listing": {"shop_id": 123, "title": "Poster"}}`))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(999), resp.ListingID)
	assert.Equal(t, "complete", resp.Stage)
}

func TestClient_CreateListing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/create-listing", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"listing":{"listing_id":5,"state":"draft"}}`))
	}))
	defer srv.Close()

	listing, err := New(srv.URL).CreateListing(context.Background(), json.RawMessage(`{"shop_id":1}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"listing_id":5,"state":"draft"}`, string(listing))
}

func TestClient_AuthStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"$schema":"http://x/schemas/AuthStatus.json","authenticated":true,"expired":false,"refreshable":true,"expires_at":"2026-10-18T12:00:00Z"}`))
	}))
	defer srv.Close()

	st, err := New(srv.URL).AuthStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Authenticated)
	assert.True(t, st.Refreshable)
	require.NotNil(t, st.ExpiresAt)
	assert.Equal(t, 2026, st.ExpiresAt.Year())
}

func TestClient_QuotaAndShippingProfiles(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /quota", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"daily_limit":10000,"daily_used":3,"remaining":9997}`))
	})
	mux.HandleFunc("GET /shops/123/shipping-profiles", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"count":1,"results":[{"shipping_profile_id":77}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL + "/")

	q, err := c.Quota(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9997), q.Remaining)
	assert.Nil(t, q.ResetAt)

	profiles, err := c.ShippingProfiles(context.Background(), 123)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":1,"results":[{"shipping_profile_id":77}]}`, string(profiles))
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
