package usecase

import (
	"context"
	"time"

	"abacus/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCalculationInput defines the data required to create a calculation.
type CreateCalculationInput struct {
	Type   string    `json:"type" validate:"required"`
	Inputs []float64 `json:"inputs" validate:"required,min=2"`
}

// UpdateCalculationInput carries replacement operands for an existing
// calculation. The operation kind is immutable after creation.
type UpdateCalculationInput struct {
	Inputs []float64 `json:"inputs" validate:"required,min=2"`
}

// --- Output DTOs ---

// CalculationView is the public projection of a stored calculation.
type CalculationView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Inputs    []float64 `json:"inputs"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCalculationView maps a domain calculation to its public projection.
func NewCalculationView(calc *entity.Calculation) *CalculationView {
	if calc == nil {
		return nil
	}

	return &CalculationView{
		ID:        calc.ID,
		UserID:    calc.UserID,
		Type:      string(calc.Operation),
		Inputs:    calc.Inputs,
		Result:    calc.Result,
		CreatedAt: calc.CreatedAt,
		UpdatedAt: calc.UpdatedAt,
	}
}

// CalculationUsecase defines the interface for calculation-related business
// operations. Every method takes the authenticated user; records owned by
// someone else are indistinguishable from records that do not exist.
type CalculationUsecase interface {
	Create(ctx context.Context, user *entity.User, input *CreateCalculationInput) (*CalculationView, error)
	List(ctx context.Context, user *entity.User) ([]*CalculationView, error)
	Get(ctx context.Context, user *entity.User, id uuid.UUID) (*CalculationView, error)
	Update(ctx context.Context, user *entity.User, id uuid.UUID, input *UpdateCalculationInput) (*CalculationView, error)
	Delete(ctx context.Context, user *entity.User, id uuid.UUID) error
}
