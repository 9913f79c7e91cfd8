// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"net/http"
	"strings"

	"refill/internal/delivery/http/response"
	domainerrors "refill/internal/domain/errors"
	"refill/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys under which the authenticated identity is stored for handlers.
const (
	KeyEmail  = "email"
	KeyUserID = "userID"
)

// AuthMiddleware validates the session token on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a token (401) and requests whose
// token does not verify (400). The Authorization value is split on a space
// and the second part is taken as the token, so both "Bearer <tk>" and any
// other single-word scheme prefix are accepted.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Fail(c, http.StatusUnauthorized, domainerrors.ErrTokenRequired.Message())
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) < 2 || parts[1] == "" {
			return response.Fail(c, http.StatusBadRequest, domainerrors.ErrInvalidToken.Message())
		}

		claims, err := m.tokenSvc.Verify(parts[1])
		if err != nil {
			return response.Fail(c, http.StatusBadRequest, domainerrors.ErrInvalidToken.Message())
		}

		c.Set(KeyEmail, claims.Email)
		c.Set(KeyUserID, claims.UserID)

		return next(c)
	}
}
