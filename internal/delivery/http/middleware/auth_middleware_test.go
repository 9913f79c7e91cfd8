package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"refill/internal/domain/service"
	mockService "refill/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func performAuthRequest(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	}

	m := NewAuthMiddleware(tokenSvc)
	err := m.Authenticate(next)(c)
	assert.NoError(t, err)

	return rec, nextCalled
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)

	rec, nextCalled := performAuthRequest(t, tokenSvc, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":false`)
	assert.Contains(t, rec.Body.String(), "The token is required")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)

	rec, nextCalled := performAuthRequest(t, tokenSvc, "token-without-scheme")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("expired-token").Return(nil, errors.New("token is expired"))

	rec, nextCalled := performAuthRequest(t, tokenSvc, "Bearer expired-token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("good-token").Return(&service.Claims{
		Email:  "user@example.com",
		UserID: userID,
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewAuthMiddleware(tokenSvc)
	err := m.Authenticate(func(c echo.Context) error {
		assert.Equal(t, "user@example.com", c.Get(KeyEmail))
		assert.Equal(t, userID, c.Get(KeyUserID))

		return c.NoContent(http.StatusOK)
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
