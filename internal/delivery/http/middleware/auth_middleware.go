// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"strings"

	"abacus/internal/delivery/http/response"
	"abacus/internal/domain/entity"
	"abacus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// ContextKeyCurrentUser is where the authenticated user is stored on echo.Context.
	ContextKeyCurrentUser = "currentUser"

	// ContextKeyUserID is where the authenticated user's ID is stored on echo.Context.
	ContextKeyUserID = "userID"
)

// AuthMiddleware authenticates requests with a bearer access token and loads
// the current user, so handlers never see a token that resolves to a missing
// or deactivated account.
type AuthMiddleware struct {
	userUsecase usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUsecase usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{userUsecase: userUsecase}
}

// Authenticate validates the bearer token and stores the resolved user on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		user, err := m.userUsecase.ResolveUser(c.Request().Context(), tokenString)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(ContextKeyCurrentUser, user)
		c.Set(ContextKeyUserID, user.ID)

		return next(c)
	}
}

// CurrentUser extracts the authenticated user placed on the context by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextKeyCurrentUser).(*entity.User)

	return user, ok
}
