package auth

import (
	"testing"
	"time"

	"bazaar/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtTestConfig(access, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh

	return cfg
}

func newTestJWTService(t *testing.T) *jwtService {
	svc, err := NewJWTService(jwtTestConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	service, ok := svc.(*jwtService)
	require.True(t, ok)

	return service
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	access, refresh, err := svc.GenerateTokens(userID, "vendor@example.com", "vendor", "west")
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "vendor@example.com", claims.Email)
	assert.Equal(t, "vendor", claims.Role)
	assert.Equal(t, "west", claims.District)

	refreshClaims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
}

func TestJWTService_TokenClassesAreNotInterchangeable(t *testing.T) {
	svc := newTestJWTService(t)

	access, refresh, err := svc.GenerateTokens(uuid.New(), "a@example.com", "customer", "")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbageAndWrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateAccessToken("not.a.jwt")
	assert.Error(t, err)

	other, err := NewJWTService(jwtTestConfig("other-access", "other-refresh"))
	require.NoError(t, err)

	access, _, err := other.GenerateTokens(uuid.New(), "a@example.com", "customer", "")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	svc.accessTTL = -time.Minute

	access, _, err := svc.GenerateTokens(uuid.New(), "a@example.com", "customer", "")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	svc := newTestJWTService(t)

	assert.Equal(t, 7*24*time.Hour, svc.GetRefreshTokenDuration())
}
