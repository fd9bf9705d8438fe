package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"abacus/config"
	"abacus/internal/domain/service"
)

const (
	defaultAccessTTL  = 30 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Access and refresh tokens are signed with distinct secrets; every time read
// goes through the injected clock, including expiry checks inside the parser.
type jwtService struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	clock         service.Clock
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, clk service.Clock) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	accessTTL := defaultAccessTTL
	refreshTTL := defaultRefreshTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTLMinutes > 0 {
			accessTTL = time.Duration(cfg.Auth.AccessTokenTTLMinutes) * time.Minute
		}
		if cfg.Auth.RefreshTokenTTLDays > 0 {
			refreshTTL = time.Duration(cfg.Auth.RefreshTokenTTLDays) * 24 * time.Hour
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		clock:         clk,
	}, nil
}

// GenerateTokenPair creates a new access token and refresh token for a given user.
func (s *jwtService) GenerateTokenPair(userID uuid.UUID) (*service.TokenPair, error) {
	now := s.clock.Now()

	accessToken, err := s.generateToken(userID, now, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	refreshToken, err := s.generateToken(userID, now, s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign refresh token")
	}

	return &service.TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		AccessExpiresAt: now.Add(s.accessTTL),
	}, nil
}

// ValidateToken checks the validity of a token string against the secret for
// the expected kind. A valid token of the wrong kind is rejected, which stops
// refresh tokens from authenticating requests and vice versa.
func (s *jwtService) ValidateToken(tokenString string, expectedType service.TokenType) (*service.Claims, error) {
	secret := s.accessSecret
	if expectedType == service.TokenTypeRefresh {
		secret = s.refreshSecret
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	}, jwt.WithTimeFunc(s.clock.Now), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(service.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	if claims.Type != expectedType {
		return nil, errors.Wrapf(service.ErrTokenTypeMismatch, "got %q, want %q", claims.Type, expectedType)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenInvalid, "malformed subject claim")
	}
	claims.UserID = userID

	return claims, nil
}

// AccessTokenDuration returns the configured lifetime of access tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// RefreshTokenDuration returns the configured lifetime of refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, now time.Time, ttl time.Duration, secret string, tokenType service.TokenType) (string, error) {
	claims := &service.Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}
