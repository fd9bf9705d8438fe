// Package clock provides the concrete time source for the domain.
package clock

import (
	"time"

	"abacus/internal/domain/service"
)

// systemClock reads the wall clock and normalizes it to UTC.
type systemClock struct{}

// NewSystemClock returns the production Clock implementation.
func NewSystemClock() service.Clock {
	return &systemClock{}
}

// Now returns the current instant in UTC.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
