package jwtx

import (
	"crypto/ed25519"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer signs access-token claims into a compact JWT.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
}

// Verifier validates a JWT and returns the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrUnknownKID  = errors.New("jwtx: unknown kid")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

type eddsaSigner struct {
	kid  string
	priv ed25519.PrivateKey
}

// NewSignerEdDSA creates an EdDSA signer from an Ed25519 private key.
func NewSignerEdDSA(kid string, priv ed25519.PrivateKey) (Signer, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, errors.New("jwtx: invalid ed25519 private key size")
	}
	return &eddsaSigner{kid: kid, priv: priv}, nil
}

func (s *eddsaSigner) Alg() string { return "EdDSA" }
func (s *eddsaSigner) KID() string { return s.kid }

func (s *eddsaSigner) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, c)
	token.Header["kid"] = s.kid
	return token.SignedString(s.priv)
}

type eddsaVerifier struct {
	kid string
	pub ed25519.PublicKey
}

// NewVerifierEdDSA creates an EdDSA verifier from an Ed25519 public key.
func NewVerifierEdDSA(kid string, pub ed25519.PublicKey) (Verifier, error) {
	if len(pub) != ed25519.PublicKeySize {
		return nil, errors.New("jwtx: invalid ed25519 public key size")
	}
	return &eddsaVerifier{kid: kid, pub: pub}, nil
}

func (v *eddsaVerifier) Verify(raw string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, ErrAlgMismatch
		}
		if kid, ok := t.Header["kid"].(string); ok && kid != v.kid {
			return nil, ErrUnknownKID
		}
		return v.pub, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlgMismatch), errors.Is(err, ErrUnknownKID):
			return Claims{}, err
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		default:
			return Claims{}, ErrInvalidSig
		}
	}
	if !token.Valid {
		return Claims{}, ErrInvalidSig
	}

	return claims, nil
}
