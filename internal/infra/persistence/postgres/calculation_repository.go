package postgres

import (
	"context"

	"abacus/internal/domain/entity"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/domain/repository"
	"abacus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// calculationRepository implements the repository.CalculationRepository interface using GORM.
type calculationRepository struct {
	db *gorm.DB
}

// NewCalculationRepository is the constructor for calculationRepository.
func NewCalculationRepository(db *gorm.DB) repository.CalculationRepository {
	return &calculationRepository{
		db: db,
	}
}

// Create persists a new calculation entity.
func (repo *calculationRepository) Create(ctx context.Context, calc *entity.Calculation) error {
	calcM := fromCalculationDomain(calc)

	if err := repo.db.WithContext(ctx).Create(calcM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required calculation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create calculation")
	}

	// Update the entity with generated values
	calc.ID = calcM.ID
	calc.CreatedAt = calcM.CreatedAt
	calc.UpdatedAt = calcM.UpdatedAt

	return nil
}

// FindByID retrieves a single calculation by its unique ID.
func (repo *calculationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Calculation, error) {
	var calcM model.CalculationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&calcM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCalculationNotFound
		}

		return nil, errors.Wrap(err, "failed to find calculation by ID")
	}

	return toCalculationDomain(&calcM), nil
}

// FindByUserID retrieves all calculations owned by a user, oldest first.
func (repo *calculationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Calculation, error) {
	var calcModels []*model.CalculationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&calcModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find calculations by user")
	}

	calcs := make([]*entity.Calculation, 0, len(calcModels))
	for _, calcM := range calcModels {
		calcs = append(calcs, toCalculationDomain(calcM))
	}

	return calcs, nil
}

// Update modifies an existing calculation entity.
func (repo *calculationRepository) Update(ctx context.Context, calc *entity.Calculation) error {
	calcM := fromCalculationDomain(calc)

	result := repo.db.WithContext(ctx).
		Model(&model.CalculationModel{}).
		Where("id = ?", calc.ID).
		Updates(map[string]any{
			"operation": calcM.Operation,
			"inputs":    calcM.Inputs,
			"result":    calcM.Result,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update calculation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCalculationNotFound
	}

	return nil
}

// Delete removes a calculation by its ID.
func (repo *calculationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CalculationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete calculation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCalculationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCalculationDomain converts a GORM CalculationModel to a domain Calculation entity.
func toCalculationDomain(data *model.CalculationModel) *entity.Calculation {
	if data == nil {
		return nil
	}

	return &entity.Calculation{
		ID:        data.ID,
		UserID:    data.UserID,
		Operation: entity.Operation(data.Operation),
		Inputs:    []float64(data.Inputs),
		Result:    data.Result,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCalculationDomain converts a domain Calculation entity to a GORM CalculationModel.
func fromCalculationDomain(data *entity.Calculation) *model.CalculationModel {
	if data == nil {
		return nil
	}

	return &model.CalculationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Operation: string(data.Operation),
		Inputs:    datatypes.NewJSONSlice(data.Inputs),
		Result:    data.Result,
	}
}
