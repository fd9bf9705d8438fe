package impl

import (
	"context"
	"log/slog"

	deliverycontext "abacus/internal/delivery/context"
	"abacus/internal/domain/entity"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/domain/repository"
	"abacus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// calculationService implements the CalculationUsecase interface.
type calculationService struct {
	txManager repository.TransactionManager
	calcRepo  repository.CalculationRepository
	logger    *slog.Logger
}

// CalculationServiceParams holds dependencies for CalculationService, injected by Fx.
type CalculationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CalcRepo  repository.CalculationRepository
	Logger    *slog.Logger
}

// NewCalculationService is the constructor for calculationService.
func NewCalculationService(params CalculationServiceParams) usecase.CalculationUsecase {
	return &calculationService{
		txManager: params.TxManager,
		calcRepo:  params.CalcRepo,
		logger:    params.Logger,
	}
}

func (srv *calculationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the inputs, computes the result and persists a new
// calculation owned by the given user.
func (srv *calculationService) Create(ctx context.Context, user *entity.User, input *usecase.CreateCalculationInput) (*usecase.CalculationView, error) {
	operation, result, err := evaluate(input.Type, input.Inputs)
	if err != nil {
		srv.log(ctx).Warn("Calculation validation failed", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, err
	}

	calc := &entity.Calculation{
		UserID:    user.ID,
		Operation: operation,
		Inputs:    input.Inputs,
		Result:    result,
	}

	if err := srv.calcRepo.Create(ctx, calc); err != nil {
		srv.log(ctx).Error("Failed to create calculation", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create calculation")
	}

	srv.log(ctx).Debug("Calculation created", slog.Any("userID", user.ID), slog.Any("calculationID", calc.ID))

	return usecase.NewCalculationView(calc), nil
}

// List returns all calculations owned by the user in creation order.
func (srv *calculationService) List(ctx context.Context, user *entity.User) ([]*usecase.CalculationView, error) {
	calcs, err := srv.calcRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to list calculations", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list calculations")
	}

	views := make([]*usecase.CalculationView, 0, len(calcs))
	for _, calc := range calcs {
		views = append(views, usecase.NewCalculationView(calc))
	}

	return views, nil
}

// Get returns a single calculation if it exists and belongs to the user.
func (srv *calculationService) Get(ctx context.Context, user *entity.User, id uuid.UUID) (*usecase.CalculationView, error) {
	calc, err := srv.findOwned(ctx, srv.calcRepo, user, id)
	if err != nil {
		return nil, err
	}

	return usecase.NewCalculationView(calc), nil
}

// Update replaces the operands of an owned calculation and recomputes the
// result using the stored operation.
func (srv *calculationService) Update(ctx context.Context, user *entity.User, id uuid.UUID, input *usecase.UpdateCalculationInput) (*usecase.CalculationView, error) {
	var updated *entity.Calculation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		calcRepo := repoFactory.CalculationRepo()

		calc, err := srv.findOwned(ctx, calcRepo, user, id)
		if err != nil {
			return err
		}

		result, err := entity.Compute(calc.Operation, input.Inputs)
		if err != nil {
			return mapComputeError(err)
		}

		calc.Inputs = input.Inputs
		calc.Result = result

		if err := calcRepo.Update(ctx, calc); err != nil {
			return errors.Wrap(err, "failed to update calculation")
		}

		updated = calc

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update calculation", slog.Any("userID", user.ID), slog.Any("calculationID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Calculation updated", slog.Any("userID", user.ID), slog.Any("calculationID", id))

	return usecase.NewCalculationView(updated), nil
}

// Delete removes an owned calculation. Deleting it twice yields the same
// not-found error as deleting a record that never existed.
func (srv *calculationService) Delete(ctx context.Context, user *entity.User, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		calcRepo := repoFactory.CalculationRepo()

		if _, err := srv.findOwned(ctx, calcRepo, user, id); err != nil {
			return err
		}

		if err := calcRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCalculationNotFound) {
				return errors.Wrap(domainerrors.ErrCalculationNotFound, "calculation not found")
			}

			return errors.Wrap(err, "failed to delete calculation")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to delete calculation", slog.Any("userID", user.ID), slog.Any("calculationID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Calculation deleted", slog.Any("userID", user.ID), slog.Any("calculationID", id))

	return nil
}

// findOwned loads a calculation and enforces ownership. A record owned by
// another user yields the exact same error as a missing record, so existence
// never leaks to non-owners.
func (srv *calculationService) findOwned(ctx context.Context, calcRepo repository.CalculationRepository, user *entity.User, id uuid.UUID) (*entity.Calculation, error) {
	calc, err := calcRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCalculationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCalculationNotFound, "calculation not found")
		}

		return nil, errors.Wrap(err, "failed to find calculation")
	}

	if calc.UserID != user.ID {
		return nil, errors.Wrap(domainerrors.ErrCalculationNotFound, "calculation not found")
	}

	return calc, nil
}

// evaluate parses the operation kind and computes the result over the inputs,
// translating domain errors into user-facing validation errors.
func evaluate(rawType string, inputs []float64) (entity.Operation, float64, error) {
	operation, err := entity.ParseOperation(rawType)
	if err != nil {
		return "", 0, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown calculation type %q", rawType)
	}

	result, err := entity.Compute(operation, inputs)
	if err != nil {
		return "", 0, mapComputeError(err)
	}

	return operation, result, nil
}

func mapComputeError(err error) error {
	switch {
	case errors.Is(err, entity.ErrTooFewInputs):
		return errors.Wrap(domainerrors.ErrValidationFailed, "calculation requires at least two inputs")
	case errors.Is(err, entity.ErrDivisionByZero):
		return errors.Wrap(domainerrors.ErrValidationFailed, "division by zero is not allowed")
	case errors.Is(err, entity.ErrUnknownOperation):
		return errors.Wrap(domainerrors.ErrValidationFailed, "unknown calculation type")
	default:
		return errors.Wrap(err, "failed to compute calculation result")
	}
}
