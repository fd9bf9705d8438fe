package repository

import (
	"context"
	"errors"

	"abacus/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCalculationNotFound is returned when a calculation does not exist.
// Repositories look records up by primary key only; ownership is enforced by
// the usecase layer, which maps a foreign owner to this same error.
var ErrCalculationNotFound = errors.New("calculation not found")

// CalculationRepository defines the persistence operations for calculations.
type CalculationRepository interface {
	// Create persists a new calculation entity.
	Create(ctx context.Context, calc *entity.Calculation) error

	// FindByID retrieves a single calculation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Calculation, error)

	// FindByUserID retrieves all calculations owned by a user, in creation order.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Calculation, error)

	// Update modifies an existing calculation entity.
	Update(ctx context.Context, calc *entity.Calculation) error

	// Delete removes a calculation by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
