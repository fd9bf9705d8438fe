package impl

import (
	"context"
	"testing"
	"time"

	"abacus/internal/domain/entity"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/domain/repository"
	"abacus/internal/domain/service"
	mockRepo "abacus/internal/mocks/repository"
	mockSvc "abacus/internal/mocks/service"
	"abacus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validRegisterInput() *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Username:        "ada",
		Password:        "Str0ng&Password",
		ConfirmPassword: "Str0ng&Password",
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := validRegisterInput()
	newID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = newID
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, input.Email, output.User.Email)
	assert.True(t, output.User.IsActive)
}

func TestUserService_RegisterUser_PasswordMismatch(t *testing.T) {
	fx := createTestUserService(t)

	input := validRegisterInput()
	input.ConfirmPassword = "something-else"

	output, err := fx.service.RegisterUser(context.Background(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)
	input := validRegisterInput()

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(errors.New("password must be at least 8 characters long"))

	output, err := fx.service.RegisterUser(context.Background(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_RegisterUser_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(&entity.User{ID: uuid.New(), Username: input.Username}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Username:     "ada",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}
	expiresAt := time.Now().UTC().Add(30 * time.Minute)

	fx.userRepo.EXPECT().FindByUsername(ctx, "ada").Return(user, nil)
	fx.hasher.EXPECT().Check("Str0ng&Password", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateTokenPair(user.ID).Return(&service.TokenPair{
		AccessToken:     "access",
		RefreshToken:    "refresh",
		AccessExpiresAt: expiresAt,
	}, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ada", Password: "Str0ng&Password"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, expiresAt, output.ExpiresAt)
	assert.Equal(t, user.ID, output.UserID)
	assert.Equal(t, user.Username, output.Username)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "ada", PasswordHash: "hashed", IsActive: true}

	fx.userRepo.EXPECT().FindByUsername(ctx, "ada").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ada", Password: "wrong"})

	assert.Nil(t, output)
	// Unknown user and wrong password surface the same error so responses
	// cannot be used to probe which usernames exist.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_InactiveAccount(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "ada", PasswordHash: "hashed", IsActive: false}

	fx.userRepo.EXPECT().FindByUsername(ctx, "ada").Return(user, nil)
	fx.hasher.EXPECT().Check("Str0ng&Password", user.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ada", Password: "Str0ng&Password"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
}

func TestUserService_ResolveUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "ada", IsActive: true}

	fx.tokenService.EXPECT().
		ValidateToken("token", service.TokenTypeAccess).
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeAccess}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	resolved, err := fx.service.ResolveUser(ctx, "token")

	require.NoError(t, err)
	assert.Equal(t, user, resolved)
}

func TestUserService_ResolveUser_ExpiredToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ValidateToken("stale", service.TokenTypeAccess).
		Return(nil, service.ErrTokenExpired)

	resolved, err := fx.service.ResolveUser(context.Background(), "stale")

	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestUserService_ResolveUser_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ValidateToken("garbage", service.TokenTypeAccess).
		Return(nil, service.ErrTokenInvalid)

	resolved, err := fx.service.ResolveUser(context.Background(), "garbage")

	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestUserService_ResolveUser_SubjectGone(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("token", service.TokenTypeAccess).
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	resolved, err := fx.service.ResolveUser(ctx, "token")

	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestUserService_ResolveUser_InactiveAccount(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), IsActive: false}

	fx.tokenService.EXPECT().
		ValidateToken("token", service.TokenTypeAccess).
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeAccess}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	resolved, err := fx.service.ResolveUser(ctx, "token")

	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "ada", IsActive: true}
	expiresAt := time.Now().UTC().Add(30 * time.Minute)

	fx.tokenService.EXPECT().
		ValidateToken("old_refresh", service.TokenTypeRefresh).
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokenPair(user.ID).Return(&service.TokenPair{
		AccessToken:     "new_access",
		RefreshToken:    "new_refresh",
		AccessExpiresAt: expiresAt,
	}, nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old_refresh"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, expiresAt, output.ExpiresAt)
}

func TestUserService_RefreshToken_AccessTokenRejected(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ValidateToken("access_token", service.TokenTypeRefresh).
		Return(nil, service.ErrTokenTypeMismatch)

	output, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "access_token"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestUserService_RefreshToken_InactiveAccount(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), IsActive: false}

	fx.tokenService.EXPECT().
		ValidateToken("refresh", service.TokenTypeRefresh).
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
}
