package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"givebox/config"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Minute}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")
	userID := uuid.New()

	tokenString, err := svc.GenerateAccessToken(userID, []string{"ADMIN"})
	require.NoError(t, err)

	token, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])

	roles, ok := claims["roles"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"ADMIN"}, roles)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, "issuer-secret")
	verifier := newTestJWTService(t, "other-secret")

	tokenString, err := issuer.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")
	svc.accessTTL = -time.Minute

	tokenString, err := svc.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": uuid.New().String()})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}
