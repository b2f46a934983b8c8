package middleware

import (
	"net/http"
	"strings"

	"stockroom/internal/delivery/http/response"
	"stockroom/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys under which the authenticated identity is stored.
const (
	// KeyClaims holds the *service.Claims of the authenticated request.
	KeyClaims = "claims"
	// KeyUserID holds the authenticated user's UUID.
	KeyUserID = "userID"
	// KeyRole holds the authenticated user's role string.
	KeyRole = "role"
)

// Terminal response messages of the token gate. The unusual 402 status and
// the misspelled prompt are load-bearing; deployed clients match on them.
const (
	msgTokenNotFound = "Token Not Found"
	msgPleaseLogIn   = "Plese LogIn!"
	msgInternalError = "Internal Server Error"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token before any protected handler runs.
// Requests stop here with one of three terminal answers: no token, expired
// token, or undecodable token. Only a verified token reaches the handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Message(c, http.StatusPaymentRequired, msgTokenNotFound)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return response.Message(c, http.StatusPaymentRequired, msgPleaseLogIn)
			}

			return response.Message(c, http.StatusInternalServerError, msgInternalError)
		}

		// Make the identity available to handlers.
		c.Set(KeyClaims, claims)
		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyRole, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(KeyRole).(string)
			if !ok || role != requiredRole {
				return response.Message(c, http.StatusForbidden, "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}
