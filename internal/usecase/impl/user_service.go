// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "abacus/internal/delivery/context"
	"abacus/internal/domain/entity"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/domain/repository"
	"abacus/internal/domain/service"
	"abacus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerTokenType = "bearer"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser orchestrates the complete user registration process.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting user registration", slog.String("username", input.Username))

	if input.Password != input.ConfirmPassword {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "password and confirmation do not match")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, err.Error())
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Pre-check both unique columns so the caller gets a conflict error
		// instead of a bare constraint violation. The unique indexes still
		// back this up under concurrent registration.
		if err := srv.ensureIdentityAvailable(ctx, userRepo, input.Username, input.Email); err != nil {
			return err
		}

		return userRepo.Create(ctx, newUser)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: usecase.NewUserView(newUser)}, nil
}

func (srv *userService) ensureIdentityAvailable(ctx context.Context, userRepo repository.UserRepository, username, email string) error {
	if _, err := userRepo.FindByUsername(ctx, username); err == nil {
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, "username already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check username availability")
	}

	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email availability")
	}

	return nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			// Same message as a wrong password so accounts cannot be enumerated.
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Login attempt on inactive account", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrAccountInactive, "login failed")
	}

	pair, err := srv.tokenService.GenerateTokenPair(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    bearerTokenType,
		ExpiresAt:    pair.AccessExpiresAt,
		UserID:       user.ID,
		Username:     user.Username,
	}, nil
}

// ResolveUser authenticates an access token and loads the user it belongs to.
func (srv *userService) ResolveUser(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(accessToken, service.TokenTypeAccess)
	if err != nil {
		return nil, srv.mapTokenError(err)
	}

	return srv.loadActiveUser(ctx, claims.UserID)
}

// RefreshToken validates a refresh token and issues a rotated token pair.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh tokens")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken, service.TokenTypeRefresh)
	if err != nil {
		return nil, srv.mapTokenError(err)
	}

	// Reload the user so a deactivated account cannot keep minting tokens.
	user, err := srv.loadActiveUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	pair, err := srv.tokenService.GenerateTokenPair(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens during refresh", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate rotated tokens")
	}

	srv.log(ctx).Debug("Tokens refreshed", slog.Any("userID", user.ID))

	return &usecase.RefreshTokenOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    bearerTokenType,
		ExpiresAt:    pair.AccessExpiresAt,
	}, nil
}

func (srv *userService) loadActiveUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrAccountInactive, "account is inactive")
	}

	return user, nil
}

func (srv *userService) mapTokenError(err error) error {
	if errors.Is(err, service.ErrTokenExpired) {
		return errors.Wrap(domainerrors.ErrTokenExpired, "token validation failed")
	}

	return errors.Wrap(domainerrors.ErrTokenInvalid, "token validation failed")
}
