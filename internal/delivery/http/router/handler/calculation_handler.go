package handler

import (
	"log/slog"
	"net/http"

	"abacus/internal/delivery/http/middleware"
	"abacus/internal/delivery/http/response"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CalculationHandler holds dependencies for calculation-related handlers.
type CalculationHandler struct {
	uc     usecase.CalculationUsecase
	logger *slog.Logger
}

// NewCalculationHandler is the constructor for CalculationHandler, injected by Fx.
func NewCalculationHandler(uc usecase.CalculationUsecase, logger *slog.Logger) *CalculationHandler {
	return &CalculationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the calculation creation request.
func (h *CalculationHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	var input *usecase.CreateCalculationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid calculation input")
	}
	if err := c.Validate(input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	view, err := h.uc.Create(c.Request().Context(), user, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Calculation created successfully")
}

// List handles the request to list the current user's calculations.
func (h *CalculationHandler) List(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	views, err := h.uc.List(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Calculations retrieved successfully")
}

// Get handles the request to read a single calculation.
func (h *CalculationHandler) Get(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	id, err := parseCalculationID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Get(c.Request().Context(), user, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Calculation retrieved successfully")
}

// Update handles the request to replace a calculation's operands.
func (h *CalculationHandler) Update(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	id, err := parseCalculationID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateCalculationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid calculation input")
	}
	if err := c.Validate(input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	view, err := h.uc.Update(c.Request().Context(), user, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Calculation updated successfully")
}

// Delete handles the request to remove a calculation.
func (h *CalculationHandler) Delete(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	id, err := parseCalculationID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), user, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func parseCalculationID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid calculation ID")
	}

	return id, nil
}
