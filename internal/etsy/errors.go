package etsy

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned by every authenticated operation when no
// access token is held. No network I/O happens before it is returned.
var ErrUnauthenticated = errors.New("not authenticated: visit /auth first")

// RemoteAPIError is a non-2xx response from the Etsy Open API. Body is the
// response payload exactly as received.
type RemoteAPIError struct {
	Op         string
	StatusCode int
	Body       []byte
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("etsy %s failed (status %d): %s", e.Op, e.StatusCode, string(e.Body))
}

// TransportError means no response was obtained (DNS, connection, timeout,
// canceled context).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("etsy %s transport error: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AuthExchangeError is a failed call to the token endpoint, either a code
// exchange or a refresh. StatusCode is zero when no response was received.
type AuthExchangeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *AuthExchangeError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("token request failed: %v", e.Err)
	}
	return fmt.Sprintf("token request failed (status %d): %s", e.StatusCode, string(e.Body))
}

func (e *AuthExchangeError) Unwrap() error { return e.Err }
