package impl

import (
	"context"
	"testing"

	"abacus/internal/domain/entity"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/domain/repository"
	mockRepo "abacus/internal/mocks/repository"
	"abacus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// calculationServiceFixtures holds all test dependencies for calculation service tests.
type calculationServiceFixtures struct {
	service   usecase.CalculationUsecase
	txManager *mockRepo.MockTransactionManager
	calcRepo  *mockRepo.MockCalculationRepository
}

func createTestCalculationService(t *testing.T) calculationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	calcRepo := mockRepo.NewMockCalculationRepository(t)

	svc := NewCalculationService(CalculationServiceParams{
		TxManager: txManager,
		CalcRepo:  calcRepo,
		Logger:    newDiscardLogger(),
	})

	return calculationServiceFixtures{
		service:   svc,
		txManager: txManager,
		calcRepo:  calcRepo,
	}
}

// expectTransaction wires the transaction manager so the callback runs against
// the fixture's calculation repository mock.
func (fx calculationServiceFixtures) expectTransaction(t *testing.T, ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().CalculationRepo().Return(fx.calcRepo)

			return fn(mockFactory)
		})
}

func testUser() *entity.User {
	return &entity.User{ID: uuid.New(), Username: "ada", IsActive: true}
}

func TestCalculationService_Create_Success(t *testing.T) {
	fx := createTestCalculationService(t)
	ctx := context.Background()
	user := testUser()
	newID := uuid.New()

	fx.calcRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Calculation")).
		Run(func(ctx context.Context, calc *entity.Calculation) {
			calc.ID = newID
		}).
		Return(nil)

	view, err := fx.service.Create(ctx, user, &usecase.CreateCalculationInput{
		Type:   "subtraction",
		Inputs: []float64{100, 30, 20},
	})

	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, newID, view.ID)
	assert.Equal(t, user.ID, view.UserID)
	assert.Equal(t, "subtraction", view.Type)
	assert.InDelta(t, 50, view.Result, 1e-9)
}

func TestCalculationService_Create_UnknownType(t *testing.T) {
	fx := createTestCalculationService(t)

	view, err := fx.service.Create(context.Background(), testUser(), &usecase.CreateCalculationInput{
		Type:   "modulo",
		Inputs: []float64{10, 3},
	})

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCalculationService_Create_TooFewInputs(t *testing.T) {
	fx := createTestCalculationService(t)

	view, err := fx.service.Create(context.Background(), testUser(), &usecase.CreateCalculationInput{
		Type:   "addition",
		Inputs: []float64{42},
	})

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCalculationService_Create_DivisionByZero(t *testing.T) {
	fx := createTestCalculationService(t)

	view, err := fx.service.Create(context.Background(), testUser(), &usecase.CreateCalculationInput{
		Type:   "division",
		Inputs: []float64{10, 2, 0},
	})

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCalculationService_List_Success(t *testing.T) {
	fx := createTestCalculationService(t)
	ctx := context.Background()
	user := testUser()

	stored := []*entity.Calculation{
		{ID: uuid.New(), UserID: user.ID, Operation: entity.OperationAddition, Inputs: []float64{1, 2}, Result: 3},
		{ID: uuid.New(), UserID: user.ID, Operation: entity.OperationDivision, Inputs: []float64{10, 4}, Result: 2.5},
	}

	fx.calcRepo.EXPECT().FindByUserID(ctx, user.ID).Return(stored, nil)

	views, err := fx.service.List(ctx, user)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, stored[0].ID, views[0].ID)
	assert.Equal(t, stored[1].ID, views[1].ID)
	assert.Equal(t, "division", views[1].Type)
}

func TestCalculationService_List_Empty(t *testing.T) {
	fx := createTestCalculationService(t)
	ctx := context.Background()
	user := testUser()

	fx.calcRepo.EXPECT().FindByUserID(ctx, user.ID).Return([]*entity.Calculation{}, nil)

	views, err := fx.service.List(ctx, user)

	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestCalculationService_Get_Success(t *testing.T) {
	fx := createTestCalculationService(t)
	ctx := context.Background()
	user := testUser()

	calc := &entity.Calculation{
		ID:        uuid.New(),
		UserID:    user.ID,
		Operation: entity.OperationMultiplication,
		Inputs:    []float64{2, 3, 4},
		Result:    24,
	}

	fx.calcRepo.EXPECT().FindByID(ctx, calc.ID).Return(calc, nil)

	view, err := fx.service.Get(ctx, user, calc.ID)

	require.NoError(t, err)
	assert.Equal(t, calc.ID, view.ID)
	assert.InDelta(t, 24, view.Result, 1e-9)
}

func TestCalculationService_Get_NotFound(t *testing.T) {
	fx := createTestCalculationService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.calcRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCalculationNotFound)

	view, err := fx.service.Get(ctx, testUser(), id)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrCalculationNotFound))
}

func TestCalculationService_Get_ForeignOwner(t *testing.T) {
	fx := createTestCalculationService(t)
	ctx := context.Background()

	calc := &entity.Calculation{
		ID:        uuid.New(),
		UserID:    uuid.New(), // someone else
		Operation: entity.OperationAddition,
		Inputs:    []float64{1, 2},
		Result:    3,
	}

	fx.calcRepo.EXPECT().FindByID(ctx, calc.ID).Return(calc, nil)

	view, err := fx.service.Get(ctx, testUser(), calc.ID)

	assert.Nil(t, view)
	// A record owned by another user must be indistinguishable from one
	// that does not exist.
	assert.True(t, errors.Is(err, domainerrors.ErrCalculationNotFound))
}

func TestCalculationService_Update_Success(t *testing.T) {
	fx := createTestCalculationService(t)
	ctx := context.Background()
	user := testUser()

	calc := &entity.Calculation{
		ID:        uuid.New(),
		UserID:    user.ID,
		Operation: entity.OperationDivision,
		Inputs:    []float64{100, 2},
		Result:    50,
	}

	fx.expectTransaction(t, ctx)
	fx.calcRepo.EXPECT().FindByID(ctx, calc.ID).Return(calc, nil)
	fx.calcRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Calculation")).
		Run(func(ctx context.Context, updated *entity.Calculation) {
			assert.Equal(t, []float64{100, 5, 2}, updated.Inputs)
			assert.InDelta(t, 10, updated.Result, 1e-9)
		}).
		Return(nil)

	view, err := fx.service.Update(ctx, user, calc.ID, &usecase.UpdateCalculationInput{
		Inputs: []float64{100, 5, 2},
	})

	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "division", view.Type)
	assert.InDelta(t, 10, view.Result, 1e-9)
}

func TestCalculationService_Update_DivisionByZero(t *testing.T) {
	fx := createTestCalculationService(t)
	ctx := context.Background()
	user := testUser()

	calc := &entity.Calculation{
		ID:        uuid.New(),
		UserID:    user.ID,
		Operation: entity.OperationDivision,
		Inputs:    []float64{100, 2},
		Result:    50,
	}

	fx.expectTransaction(t, ctx)
	fx.calcRepo.EXPECT().FindByID(ctx, calc.ID).Return(calc, nil)

	view, err := fx.service.Update(ctx, user, calc.ID, &usecase.UpdateCalculationInput{
		Inputs: []float64{100, 0},
	})

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCalculationService_Update_ForeignOwner(t *testing.T) {
	fx := createTestCalculationService(t)
	ctx := context.Background()

	calc := &entity.Calculation{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Operation: entity.OperationAddition,
		Inputs:    []float64{1, 2},
		Result:    3,
	}

	fx.expectTransaction(t, ctx)
	fx.calcRepo.EXPECT().FindByID(ctx, calc.ID).Return(calc, nil)

	view, err := fx.service.Update(ctx, testUser(), calc.ID, &usecase.UpdateCalculationInput{
		Inputs: []float64{4, 5},
	})

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrCalculationNotFound))
}

func TestCalculationService_Delete_Success(t *testing.T) {
	fx := createTestCalculationService(t)
	ctx := context.Background()
	user := testUser()

	calc := &entity.Calculation{
		ID:        uuid.New(),
		UserID:    user.ID,
		Operation: entity.OperationAddition,
		Inputs:    []float64{1, 2},
		Result:    3,
	}

	fx.expectTransaction(t, ctx)
	fx.calcRepo.EXPECT().FindByID(ctx, calc.ID).Return(calc, nil)
	fx.calcRepo.EXPECT().Delete(ctx, calc.ID).Return(nil)

	err := fx.service.Delete(ctx, user, calc.ID)

	require.NoError(t, err)
}

func TestCalculationService_Delete_NotFound(t *testing.T) {
	fx := createTestCalculationService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.expectTransaction(t, ctx)
	fx.calcRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCalculationNotFound)

	err := fx.service.Delete(ctx, testUser(), id)

	assert.True(t, errors.Is(err, domainerrors.ErrCalculationNotFound))
}
