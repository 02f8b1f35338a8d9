// Package main implements a mock Etsy Open API server for local development.
// It keeps listings in memory and answers the OAuth, listing, inventory,
// taxonomy and upload endpoints the bridge calls, so the full publication
// flow runs without an Etsy app or a real shop.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	tokenPath   = "/v3/public/oauth/token"
	connectPath = "/oauth/connect"
	apiPrefix   = "/v3/application"

	mockUserID     = 424242
	tokenLifetime  = 3600
	maxUploadBytes = 32 << 20
)

// mockServer holds the in-memory shop state.
type mockServer struct {
	log *slog.Logger

	mu        sync.Mutex
	nextID    int64
	listings  map[int64]json.RawMessage
	inventory map[int64]json.RawMessage
	media     map[int64][]json.RawMessage
}

func newMockServer(log *slog.Logger) *mockServer {
	return &mockServer{
		log:       log,
		nextID:    1000000001,
		listings:  make(map[int64]json.RawMessage),
		inventory: make(map[int64]json.RawMessage),
		media:     make(map[int64][]json.RawMessage),
	}
}

func main() {
	port := flag.Int("port", 8090, "port to listen on")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Etsy server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMockServer(logger).routes()),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func (s *mockServer) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+connectPath, s.connect)
	mux.HandleFunc("POST "+tokenPath, s.token)

	api := http.NewServeMux()
	api.HandleFunc("POST /shops/{shop_id}/listings", s.createListing)
	api.HandleFunc("GET /listings/{listing_id}", s.getListing)
	api.HandleFunc("PUT /listings/{listing_id}/inventory", s.updateInventory)
	api.HandleFunc("GET /seller-taxonomy/nodes/{taxonomy_id}/properties", s.taxonomyProperties)
	api.HandleFunc("GET /shops/{shop_id}/shipping-profiles", s.shippingProfiles)
	api.HandleFunc("GET /shops/{shop_id}/production-partners", s.productionPartners)
	api.HandleFunc("POST /shops/{shop_id}/listings/{listing_id}/images", s.upload("image"))
	api.HandleFunc("POST /shops/{shop_id}/listings/{listing_id}/videos", s.upload("video"))

	mux.Handle(apiPrefix+"/", http.StripPrefix(apiPrefix, requireAuth(s.log, api)))
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// requireAuth checks for a bearer token and an x-api-key header. Neither is
// verified beyond being present and well formed.
func requireAuth(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") == "" {
			logger.Warn("request missing x-api-key")
			writeError(w, http.StatusForbidden, "invalid_api_key", "x-api-key header is required")
			return
		}
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || !strings.HasPrefix(token, strconv.Itoa(mockUserID)+".") {
			logger.Warn("request with missing or foreign bearer token")
			writeError(w, http.StatusUnauthorized, "invalid_token", "access token is missing or invalid")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// connect stands in for the consent page: it approves immediately and
// redirects back with a code.
func (s *mockServer) connect(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	redirect, err := url.Parse(q.Get("redirect_uri"))
	if err != nil || !redirect.IsAbs() {
		writeError(w, http.StatusBadRequest, "invalid_request", "redirect_uri must be an absolute URL")
		return
	}
	if q.Get("code_challenge") == "" || q.Get("code_challenge_method") != "S256" {
		writeError(w, http.StatusBadRequest, "invalid_request", "S256 code_challenge is required")
		return
	}

	back := redirect.Query()
	back.Set("code", "mock-code-"+uuid.NewString())
	back.Set("state", q.Get("state"))
	redirect.RawQuery = back.Encode()

	s.log.Info("authorization approved", "client_id", q.Get("client_id"))
	http.Redirect(w, r, redirect.String(), http.StatusFound)
}

func (s *mockServer) token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if r.PostForm.Get("client_id") == "" {
		writeError(w, http.StatusUnauthorized, "invalid_client", "client_id is required")
		return
	}

	switch grant := r.PostForm.Get("grant_type"); grant {
	case "authorization_code":
		if r.PostForm.Get("code") == "" || r.PostForm.Get("code_verifier") == "" {
			writeError(w, http.StatusBadRequest, "invalid_grant", "code and code_verifier are required")
			return
		}
	case "refresh_token":
		if r.PostForm.Get("refresh_token") == "" {
			writeError(w, http.StatusBadRequest, "invalid_grant", "refresh_token is required")
			return
		}
	default:
		writeError(w, http.StatusBadRequest, "unsupported_grant_type", "grant_type "+grant+" is not supported")
		return
	}

	prefix := strconv.Itoa(mockUserID) + "."
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  prefix + uuid.NewString(),
		"token_type":    "Bearer",
		"expires_in":    tokenLifetime,
		"refresh_token": prefix + uuid.NewString(),
	})
	s.log.Info("issued mock token", "grant_type", r.PostForm.Get("grant_type"))
}

func (s *mockServer) createListing(w http.ResponseWriter, r *http.Request) {
	shopID, ok := pathID(w, r, "shop_id")
	if !ok {
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil || !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsObject() {
		writeError(w, http.StatusBadRequest, "invalid_request", "body must be a JSON object")
		return
	}
	for _, field := range []string{"title", "quantity", "price", "who_made", "when_made", "taxonomy_id"} {
		if !gjson.GetBytes(body, field).Exists() {
			writeError(w, http.StatusBadRequest, "invalid_request", field+" is required")
			return
		}
	}
	if tax := gjson.GetBytes(body, "taxonomy_id"); tax.Type != gjson.Number {
		writeError(w, http.StatusBadRequest, "invalid_request", "taxonomy_id must be an integer")
		return
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	listing := body
	for field, v := range map[string]any{
		"listing_id": id,
		"shop_id":    shopID,
		"user_id":    mockUserID,
		"state":      "draft",
		"url":        fmt.Sprintf("https://www.etsy.com/listing/%d", id),
	} {
		listing, _ = sjson.SetBytes(listing, field, v)
	}
	s.listings[id] = listing
	s.mu.Unlock()

	s.log.Info("listing created", "listing_id", id, "shop_id", shopID)
	writeRaw(w, http.StatusCreated, listing)
}

func (s *mockServer) getListing(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "listing_id")
	if !ok {
		return
	}

	s.mu.Lock()
	listing, found := s.listings[id]
	inv := s.inventory[id]
	s.mu.Unlock()

	if !found {
		writeError(w, http.StatusNotFound, "not_found", fmt.Sprintf("listing %d does not exist", id))
		return
	}
	if strings.Contains(strings.ToLower(r.URL.Query().Get("includes")), "inventory") {
		if inv == nil {
			inv = json.RawMessage(`{"products":[]}`)
		}
		listing, _ = sjson.SetRawBytes(listing, "inventory", inv)
	}
	writeRaw(w, http.StatusOK, listing)
}

func (s *mockServer) updateInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "listing_id")
	if !ok {
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil || !gjson.GetBytes(body, "products").IsArray() {
		writeError(w, http.StatusBadRequest, "invalid_request", "products must be an array")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.listings[id]; !found {
		writeError(w, http.StatusNotFound, "not_found", fmt.Sprintf("listing %d does not exist", id))
		return
	}

	inv := body
	gjson.GetBytes(body, "products").ForEach(func(key, _ gjson.Result) bool {
		inv, _ = sjson.SetBytes(inv, "products."+key.String()+".product_id", s.nextID)
		s.nextID++
		return true
	})
	s.inventory[id] = inv

	s.log.Info("inventory updated", "listing_id", id, "products", gjson.GetBytes(inv, "products.#").Int())
	writeRaw(w, http.StatusOK, inv)
}

func (s *mockServer) taxonomyProperties(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "taxonomy_id")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count": 3,
		"results": []map[string]any{
			{"property_id": 100, "name": "Size", "display_name": "Size", "taxonomy_id": id},
			{"property_id": 513, "name": "Custom Property", "display_name": "Custom", "taxonomy_id": id},
			{"property_id": 514, "name": "Print type", "display_name": "Print type", "taxonomy_id": id},
		},
	})
}

func (s *mockServer) shippingProfiles(w http.ResponseWriter, r *http.Request) {
	shopID, ok := pathID(w, r, "shop_id")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count": 1,
		"results": []map[string]any{{
			"shipping_profile_id": 200000001,
			"title":               "Standard",
			"user_id":             mockUserID,
			"shop_id":             shopID,
			"origin_country_iso":  "US",
			"processing_min":      1,
			"processing_max":      3,
		}},
	})
}

func (s *mockServer) productionPartners(w http.ResponseWriter, r *http.Request) {
	if _, ok := pathID(w, r, "shop_id"); !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count": 1,
		"results": []map[string]any{{
			"production_partner_id": 300000001,
			"partner_name":          "Mock Print Shop",
			"location":              "Brooklyn, NY",
		}},
	})
}

// upload accepts a multipart file in field and records it against the
// listing.
func (s *mockServer) upload(field string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, ok := pathID(w, r, "listing_id")
		if !ok {
			return
		}
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "multipart body required: "+err.Error())
			return
		}
		file, hdr, err := r.FormFile(field)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", field+" file is required")
			return
		}
		defer file.Close()
		n, err := io.Copy(io.Discard, file)
		if err != nil || n == 0 {
			writeError(w, http.StatusBadRequest, "invalid_request", field+" file is empty")
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if _, found := s.listings[listingID]; !found {
			writeError(w, http.StatusNotFound, "not_found", fmt.Sprintf("listing %d does not exist", listingID))
			return
		}

		mediaID := s.nextID
		s.nextID++
		rank := len(s.media[listingID]) + 1
		out, _ := json.Marshal(map[string]any{
			"listing_" + field + "_id": mediaID,
			"listing_id":               listingID,
			"rank":                     rank,
			"filename":                 hdr.Filename,
			"content_type":             hdr.Header.Get("Content-Type"),
			"size_bytes":               n,
		})
		s.media[listingID] = append(s.media[listingID], out)

		s.log.Info(field+" uploaded", "listing_id", listingID, "bytes", n)
		writeRaw(w, http.StatusCreated, out)
	}
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, status int, code, desc string) {
	writeJSON(w, status, map[string]string{"error": code, "error_description": desc})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	w.Write(body)
}
