// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"refill/config"
	"refill/internal/domain/entity"
	"refill/internal/domain/service"
)

// sessionTTL is the fixed validity window of a session token. There is no
// refresh mechanism; expiry is the only termination.
const sessionTTL = time.Hour

// ErrInvalidToken is returned for any token that cannot be verified: bad
// signature, malformed structure, wrong signing method, or past expiry.
var ErrInvalidToken = errors.New("invalid session token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Session,
		ttl:    sessionTTL,
	}, nil
}

// Issue creates a signed session token embedding the user's email and id.
func (s *jwtService) Issue(user *entity.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email":  user.Email,
		"idUser": user.ID.String(),
		"iat":    now.Unix(),
		"exp":    now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify checks the token's signature and expiry and returns its claims.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, ok := mapClaims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	idStr, ok := mapClaims["idUser"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &service.Claims{Email: email, UserID: userID}, nil
}
