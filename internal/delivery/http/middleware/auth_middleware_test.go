package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stockroom/internal/domain/service"
	mockSvc "stockroom/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeAuth(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/inventory/brands", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextInvoked := false
	next := func(c echo.Context) error {
		nextInvoked = true

		return c.NoContent(http.StatusOK)
	}

	m := NewAuthMiddleware(tokenSvc)
	err := m.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, nextInvoked
}

func TestAuthenticate_MissingToken(t *testing.T) {
	tokenSvc := &mockSvc.TokenService{}

	rec, nextInvoked := invokeAuth(t, tokenSvc, "")

	assert.False(t, nextInvoked)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.JSONEq(t, `{"message":"Token Not Found"}`, rec.Body.String())
	tokenSvc.AssertNotCalled(t, "Verify")
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	tokenSvc := &mockSvc.TokenService{}
	tokenSvc.On("Verify", "expired-token").Return(nil, service.ErrTokenExpired)

	rec, nextInvoked := invokeAuth(t, tokenSvc, "Bearer expired-token")

	assert.False(t, nextInvoked)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.JSONEq(t, `{"message":"Plese LogIn!"}`, rec.Body.String())
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := &mockSvc.TokenService{}
	tokenSvc.On("Verify", "garbage").Return(nil, service.ErrTokenInvalid)

	rec, nextInvoked := invokeAuth(t, tokenSvc, "Bearer garbage")

	assert.False(t, nextInvoked)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rec.Body.String())
}

func TestAuthenticate_ValidToken(t *testing.T) {
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Email: "ada@example.com", Role: "admin"}

	tokenSvc := &mockSvc.TokenService{}
	tokenSvc.On("Verify", "good-token").Return(claims, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/inventory/brands", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewAuthMiddleware(tokenSvc)
	err := m.Authenticate(func(c echo.Context) error {
		assert.Equal(t, claims, c.Get(KeyClaims))
		assert.Equal(t, userID, c.Get(KeyUserID))
		assert.Equal(t, "admin", c.Get(KeyRole))

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// The header value is used as-is when no Bearer prefix is present, so a raw
// token also verifies.
func TestAuthenticate_RawTokenWithoutBearerPrefix(t *testing.T) {
	tokenSvc := &mockSvc.TokenService{}
	tokenSvc.On("Verify", "raw-token").Return(&service.Claims{UserID: uuid.New()}, nil)

	rec, nextInvoked := invokeAuth(t, tokenSvc, "raw-token")

	assert.True(t, nextInvoked)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       any
		wantStatus int
		wantNext   bool
	}{
		{"matching role passes", "admin", http.StatusOK, true},
		{"other role rejected", "user", http.StatusForbidden, false},
		{"missing role rejected", nil, http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.role != nil {
				c.Set(KeyRole, tt.role)
			}

			nextInvoked := false
			m := NewAuthMiddleware(&mockSvc.TokenService{})
			err := m.RequireRole("admin")(func(c echo.Context) error {
				nextInvoked = true

				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantNext, nextInvoked)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
