package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default bearer token lifetime. Sessions are
// expected to span a working day; clients re-login when the token lapses.
const DefaultAccessTokenTTL = 24 * time.Hour

// Claims are the access-token claims carried by every bearer token.
type Claims struct {
	jwt.RegisteredClaims

	// Permission scopes, e.g. "tasks:read tasks:write"
	Scopes []string `json:"scopes,omitempty"`

	// Username of the authenticated user
	Username string `json:"username,omitempty"`

	// Privilege tier stored on the account (Read, Read and Write, Full Control)
	Privilege string `json:"privilege,omitempty"`
}

// NewAccessClaims builds minimally-correct claims for a user.
func NewAccessClaims(
	subject, username, privilege string,
	scopes []string,
	issuer string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Scopes:    scopes,
		Username:  username,
		Privilege: privilege,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches the expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used before
// it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
