package auth

import (
	"testing"
	"time"

	"refill/config"
	"refill/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	user := &entity.User{
		ID:    uuid.New(),
		Email: "test@example.com",
	}

	token, err := svc.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_VerifyMalformedToken(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := svc.Verify("clearly-not-a-jwt-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testJWTConfig("secret_one_very_long_for_testing_purposes"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testJWTConfig("secret_two_very_long_for_testing_purposes"))
	require.NoError(t, err)

	token, err := issuer.Issue(&entity.User{ID: uuid.New(), Email: "test@example.com"})
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_VerifyExpiredToken(t *testing.T) {
	svc := &jwtService{
		secret: "test_session_secret_key_very_long_for_testing",
		ttl:    -time.Hour,
	}

	token, err := svc.Issue(&entity.User{ID: uuid.New(), Email: "test@example.com"})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
