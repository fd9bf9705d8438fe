package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Operation is the closed set of calculation kinds. The set is fixed; new
// kinds require a code change so Compute stays exhaustively checkable.
type Operation string

const (
	OperationAddition       Operation = "addition"
	OperationSubtraction    Operation = "subtraction"
	OperationMultiplication Operation = "multiplication"
	OperationDivision       Operation = "division"
)

// Domain errors raised by Compute. The usecase layer translates these into
// user-facing validation errors.
var (
	ErrUnknownOperation = errors.New("unknown calculation operation")
	ErrTooFewInputs     = errors.New("calculation requires at least two inputs")
	ErrDivisionByZero   = errors.New("division by zero")
)

// ParseOperation converts a raw string into an Operation.
func ParseOperation(raw string) (Operation, error) {
	op := Operation(raw)
	if !op.Valid() {
		return "", ErrUnknownOperation
	}

	return op, nil
}

// Valid reports whether the operation belongs to the closed set.
func (op Operation) Valid() bool {
	switch op {
	case OperationAddition, OperationSubtraction, OperationMultiplication, OperationDivision:
		return true
	default:
		return false
	}
}

// Calculation represents a stored calculation owned by a single user.
// Result is derived from Operation and Inputs via Compute and is never set
// independently.
type Calculation struct {
	ID        uuid.UUID // The unique identifier for the calculation.
	UserID    uuid.UUID // The owning user; only the owner may read or mutate the record.
	Operation Operation // One of the closed operation set.
	Inputs    []float64 // Ordered operands, at least two.
	Result    float64   // Derived result, recomputed whenever Inputs change.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Compute evaluates the operation over the ordered inputs.
// Subtraction and division fold left to right from the first operand;
// division checks every divisor after the first, not a combined one.
func Compute(op Operation, inputs []float64) (float64, error) {
	if len(inputs) < 2 {
		return 0, ErrTooFewInputs
	}

	switch op {
	case OperationAddition:
		var sum float64
		for _, n := range inputs {
			sum += n
		}

		return sum, nil
	case OperationSubtraction:
		result := inputs[0]
		for _, n := range inputs[1:] {
			result -= n
		}

		return result, nil
	case OperationMultiplication:
		result := 1.0
		for _, n := range inputs {
			result *= n
		}

		return result, nil
	case OperationDivision:
		result := inputs[0]
		for _, n := range inputs[1:] {
			if n == 0 {
				return 0, ErrDivisionByZero
			}
			result /= n
		}

		return result, nil
	default:
		return 0, ErrUnknownOperation
	}
}
