// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"stockroom/config"
	"stockroom/internal/domain/service"
	"stockroom/internal/errors"
)

const defaultTokenTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   string        // Process-wide signing secret, immutable after startup.
	tokenTTL time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtService{
		secret:   cfg.Auth.Secret,
		tokenTTL: ttl,
	}, nil
}

// Issue serializes the claims plus an expiration timestamp and signs them
// with the process-wide secret.
func (s *jwtService) Issue(claims *service.Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the token signature against the configured secret and the
// expiration against current time. Expiry is reported as ErrTokenExpired;
// every other decode failure collapses to ErrTokenInvalid.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	return claims, nil
}
