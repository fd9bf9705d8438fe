package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType distinguishes the two token kinds the service issues. Each kind
// is signed with its own secret so one leaked secret cannot forge the other.
type TokenType string

const (
	// TokenTypeAccess is the short-lived credential used to authenticate requests.
	TokenTypeAccess TokenType = "access"
	// TokenTypeRefresh is the longer-lived credential used solely to obtain a new pair.
	TokenTypeRefresh TokenType = "refresh"
)

// Validation failures are reported as distinct error kinds so callers can
// tell an expired token from a forged or misused one.
var (
	// ErrTokenInvalid covers bad signatures and malformed claims.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenTypeMismatch is returned when a token of one kind is presented
	// where the other kind is expected (e.g. a refresh token used as access).
	ErrTokenTypeMismatch = errors.New("unexpected token type")
)

// Claims defines the custom claims embedded in the signed tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Type   TokenType `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair bundles the two tokens issued on login and refresh.
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokenPair creates a new access and refresh token for a given user.
	GenerateTokenPair(userID uuid.UUID) (*TokenPair, error)

	// ValidateToken checks a token string and enforces the expected kind.
	ValidateToken(tokenString string, expectedType TokenType) (*Claims, error)

	// AccessTokenDuration returns the configured lifetime of access tokens.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
