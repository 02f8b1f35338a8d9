package etsy

import (
	"errors"
	"fmt"

	"golang.org/x/oauth2"
)

// RFC 7636 verifier length bounds.
const (
	minVerifierLength = 43
	maxVerifierLength = 128
)

// ErrInvalidVerifier is returned for verifiers outside the RFC 7636 unreserved
// character set or length bounds.
var ErrInvalidVerifier = errors.New("invalid PKCE code verifier")

// PKCE holds a code verifier and the S256 challenge derived from it. The pair
// belongs to one authorization request.
type PKCE struct {
	Verifier  string
	Challenge string
}

// GeneratePKCE creates a fresh random verifier and its challenge.
func GeneratePKCE() (*PKCE, error) {
	// GenerateVerifier yields 43 base64url characters; validated anyway so a
	// bad pair can never reach the authorization URL.
	for range 3 {
		verifier := oauth2.GenerateVerifier()
		if ValidateVerifier(verifier) == nil {
			return &PKCE{Verifier: verifier, Challenge: Challenge(verifier)}, nil
		}
	}
	return nil, fmt.Errorf("generating code verifier: %w", ErrInvalidVerifier)
}

// NewPKCE builds a pair from a caller-fixed verifier, rejecting anything that
// is not plain unreserved ASCII.
func NewPKCE(verifier string) (*PKCE, error) {
	if err := ValidateVerifier(verifier); err != nil {
		return nil, err
	}
	return &PKCE{Verifier: verifier, Challenge: Challenge(verifier)}, nil
}

// Challenge returns base64url(sha256(verifier)) without padding.
func Challenge(verifier string) string {
	return oauth2.S256ChallengeFromVerifier(verifier)
}

// ValidateVerifier checks the length and that every byte is in
// [A-Za-z0-9-._~]. A verifier carrying multi-byte characters hashes to a
// challenge the identity server never reproduces.
func ValidateVerifier(verifier string) error {
	if n := len(verifier); n < minVerifierLength || n > maxVerifierLength {
		return fmt.Errorf(
			"%w: length %d outside %d..%d",
			ErrInvalidVerifier, n, minVerifierLength, maxVerifierLength,
		)
	}
	for i := 0; i < len(verifier); i++ {
		if !isUnreserved(verifier[i]) {
			return fmt.Errorf("%w: byte 0x%02x at offset %d", ErrInvalidVerifier, verifier[i], i)
		}
	}
	return nil
}

func isUnreserved(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '-', b == '.', b == '_', b == '~':
		return true
	default:
		return false
	}
}
