package auth

import (
	"testing"
	"time"

	"abacus/config"
	"abacus/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClock is a controllable clock for expiry tests.
type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time {
	return c.now
}

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTLMinutes: 30,
			RefreshTokenTTLDays:   7,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	clk := &stubClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	jwtService, err := NewJWTService(newTestJWTConfig(), clk)
	require.NoError(t, err)

	userID := uuid.New()

	pair, err := jwtService.GenerateTokenPair(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, clk.now.Add(30*time.Minute), pair.AccessExpiresAt)

	// Validate access token
	accessClaims, err := jwtService.ValidateToken(pair.AccessToken, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateToken(pair.RefreshToken, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_CrossTypeRejection(t *testing.T) {
	clk := &stubClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	jwtService, err := NewJWTService(newTestJWTConfig(), clk)
	require.NoError(t, err)

	pair, err := jwtService.GenerateTokenPair(uuid.New())
	require.NoError(t, err)

	// An access token must not pass as a refresh token, and vice versa.
	// The secrets differ per kind, so the signature check already fails.
	claims, err := jwtService.ValidateToken(pair.AccessToken, service.TokenTypeRefresh)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = jwtService.ValidateToken(pair.RefreshToken, service.TokenTypeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	clk := &stubClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	jwtService, err := NewJWTService(newTestJWTConfig(), clk)
	require.NoError(t, err)

	pair, err := jwtService.GenerateTokenPair(uuid.New())
	require.NoError(t, err)

	// Jump past the access TTL; the refresh token is still alive.
	clk.now = clk.now.Add(31 * time.Minute)

	claims, err := jwtService.ValidateToken(pair.AccessToken, service.TokenTypeAccess)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.Nil(t, claims)

	refreshClaims, err := jwtService.ValidateToken(pair.RefreshToken, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)

	// Jump past the refresh TTL as well.
	clk.now = clk.now.Add(8 * 24 * time.Hour)
	_, err = jwtService.ValidateToken(pair.RefreshToken, service.TokenTypeRefresh)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_InvalidToken(t *testing.T) {
	clk := &stubClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	jwtService, err := NewJWTService(newTestJWTConfig(), clk)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format", service.TokenTypeAccess)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	clk := &stubClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	jwtService, err := NewJWTService(newTestJWTConfig(), clk)
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.SecretKey.Access = "another_access_secret_entirely_different"
	otherService, err := NewJWTService(otherCfg, clk)
	require.NoError(t, err)

	pair, err := otherService.GenerateTokenPair(uuid.New())
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(pair.AccessToken, service.TokenTypeAccess)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg, &stubClock{now: time.Now().UTC()})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_IdenticalSecretsRejected(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access

	jwtService, err := NewJWTService(cfg, &stubClock{now: time.Now().UTC()})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_Durations(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(), &stubClock{now: time.Now().UTC()})
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, jwtService.AccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, jwtService.RefreshTokenDuration())
}
