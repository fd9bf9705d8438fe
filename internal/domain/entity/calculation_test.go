package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name   string
		op     Operation
		inputs []float64
		want   float64
	}{
		{name: "addition sums all inputs", op: OperationAddition, inputs: []float64{10, 20, 30}, want: 60},
		{name: "addition with negatives", op: OperationAddition, inputs: []float64{5, -3}, want: 2},
		{name: "subtraction folds left to right", op: OperationSubtraction, inputs: []float64{100, 30, 20}, want: 50},
		{name: "multiplication multiplies all inputs", op: OperationMultiplication, inputs: []float64{2, 3, 4}, want: 24},
		{name: "multiplication by zero operand", op: OperationMultiplication, inputs: []float64{2, 0, 4}, want: 0},
		{name: "division folds left to right", op: OperationDivision, inputs: []float64{100, 5, 2}, want: 10},
		{name: "division of fractions", op: OperationDivision, inputs: []float64{1, 4}, want: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.op, tt.inputs)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCompute_TooFewInputs(t *testing.T) {
	for _, op := range []Operation{OperationAddition, OperationSubtraction, OperationMultiplication, OperationDivision} {
		_, err := Compute(op, []float64{42})
		assert.ErrorIs(t, err, ErrTooFewInputs, "operation %s should reject a single input", op)

		_, err = Compute(op, nil)
		assert.ErrorIs(t, err, ErrTooFewInputs, "operation %s should reject empty inputs", op)
	}
}

func TestCompute_DivisionByZero(t *testing.T) {
	_, err := Compute(OperationDivision, []float64{10, 0})
	assert.ErrorIs(t, err, ErrDivisionByZero)

	// A zero anywhere after the first operand is rejected, even mid-sequence.
	_, err = Compute(OperationDivision, []float64{10, 2, 0, 5})
	assert.ErrorIs(t, err, ErrDivisionByZero)

	// A leading zero is a valid dividend.
	got, err := Compute(OperationDivision, []float64{0, 4})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestCompute_UnknownOperation(t *testing.T) {
	_, err := Compute(Operation("modulo"), []float64{10, 3})
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestParseOperation(t *testing.T) {
	op, err := ParseOperation("addition")
	require.NoError(t, err)
	assert.Equal(t, OperationAddition, op)

	_, err = ParseOperation("exponentiation")
	assert.ErrorIs(t, err, ErrUnknownOperation)
}
