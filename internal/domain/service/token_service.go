package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failure taxonomy. Callers branch on these with errors.Is;
// expiry must stay distinguishable from every other decode failure.
var (
	// ErrTokenExpired means the signature was valid but the expiration is in the past.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers signature mismatch, malformed tokens and any
	// other decode failure that is not specifically an expiry.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carries the account identity embedded inside a signed token.
// It exists only for the lifetime of the token and is never persisted.
type Claims struct {
	UserID    uuid.UUID `json:"uid"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// The signing secret and expiration window are process-wide configuration,
// immutable after startup.
type TokenService interface {
	// Issue serializes claims plus an expiration timestamp and signs them.
	Issue(claims *Claims) (string, error)

	// Verify checks signature and expiry, returning the embedded claims on
	// success, ErrTokenExpired or ErrTokenInvalid otherwise. Purely local
	// cryptographic verification; no network call, no retry.
	Verify(token string) (*Claims, error)
}
