package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/donaldgifford/etsy-bridge/internal/etsy"
	"github.com/donaldgifford/etsy-bridge/internal/media"
	"github.com/donaldgifford/etsy-bridge/internal/publish"
)

// Error types reported in ErrorResponse.ErrorType.
const (
	ErrorTypeInvalidField    = "invalid_field"
	ErrorTypeUnauthenticated = "unauthenticated"
	ErrorTypeRemoteAPI       = "remote_api"
	ErrorTypeTransport       = "transport"
	ErrorTypeAuthExchange    = "auth_exchange"
	ErrorTypeAuthState       = "auth_state"
	ErrorTypeMediaFetch      = "media_fetch"
	ErrorTypeRateLimited     = "rate_limited"
	ErrorTypeNoTaxonomy      = "no_taxonomy"
	ErrorTypeInternal        = "internal"
)

// ErrorResponse is the error body of every bridge endpoint. It satisfies
// huma.StatusError, so huma handlers return it directly.
type ErrorResponse struct {
	status int

	Message   string          `json:"error"                doc:"Human readable error"`
	ErrorType string          `json:"error_type"           doc:"Error category" example:"remote_api"`
	Stage     string          `json:"stage,omitempty"      doc:"Publication stage that failed"`
	ListingID int64           `json:"listing_id,omitempty" doc:"Listing created before the failure"`
	Field     string          `json:"field,omitempty"      doc:"Offending request field"`
	Remote    json.RawMessage `json:"remote,omitempty"     doc:"Etsy error payload as received"`
}

func (e *ErrorResponse) Error() string { return e.Message }

// GetStatus returns the HTTP status for the error.
func (e *ErrorResponse) GetStatus() int { return e.status }

func newErrorResponse(status int, errType, msg string) *ErrorResponse {
	return &ErrorResponse{status: status, ErrorType: errType, Message: msg}
}

// toErrorResponse classifies err into a status and body.
func toErrorResponse(err error) *ErrorResponse {
	var already *ErrorResponse
	if errors.As(err, &already) {
		return already
	}

	resp := &ErrorResponse{Message: err.Error()}

	var stageErr *publish.StageError
	if errors.As(err, &stageErr) {
		resp.Stage = string(stageErr.Stage)
		resp.ListingID = stageErr.ListingID
	}

	var (
		fieldErr    *publish.InvalidFieldError
		remoteErr   *etsy.RemoteAPIError
		exchangeErr *etsy.AuthExchangeError
		fetchErr    *media.FetchError
		transport   *etsy.TransportError
	)

	switch {
	case errors.As(err, &fieldErr):
		resp.status, resp.ErrorType = http.StatusBadRequest, ErrorTypeInvalidField
		resp.Field = fieldErr.Field
	case errors.Is(err, etsy.ErrUnauthenticated):
		resp.status, resp.ErrorType = http.StatusUnauthorized, ErrorTypeUnauthenticated
	case errors.Is(err, etsy.ErrDailyLimitReached):
		resp.status, resp.ErrorType = http.StatusTooManyRequests, ErrorTypeRateLimited
	case errors.As(err, &remoteErr):
		resp.status, resp.ErrorType = remoteErr.StatusCode, ErrorTypeRemoteAPI
		resp.Remote = rawPayload(remoteErr.Body)
	case errors.As(err, &exchangeErr):
		resp.status, resp.ErrorType = exchangeErr.StatusCode, ErrorTypeAuthExchange
		if resp.status == 0 {
			resp.status = http.StatusInternalServerError
		}
		resp.Remote = rawPayload(exchangeErr.Body)
	case errors.Is(err, etsy.ErrStateMismatch), errors.Is(err, etsy.ErrNoPendingAuthorization):
		resp.status, resp.ErrorType = http.StatusBadRequest, ErrorTypeAuthState
	case errors.As(err, &fetchErr):
		resp.status, resp.ErrorType = http.StatusUnprocessableEntity, ErrorTypeMediaFetch
	case errors.Is(err, publish.ErrNoTaxonomy):
		resp.status, resp.ErrorType = http.StatusUnprocessableEntity, ErrorTypeNoTaxonomy
	case errors.As(err, &transport), errors.Is(err, context.DeadlineExceeded):
		resp.status, resp.ErrorType = http.StatusBadGateway, ErrorTypeTransport
	default:
		resp.status, resp.ErrorType = http.StatusInternalServerError, ErrorTypeInternal
	}

	return resp
}

// rawPayload keeps a JSON payload as is and quotes anything else.
func rawPayload(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if gjson.ValidBytes(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body)) //nolint:errchkjson // string marshal cannot fail
	return quoted
}
