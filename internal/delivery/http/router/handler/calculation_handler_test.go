package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"abacus/internal/delivery/http/middleware"
	"abacus/internal/domain/entity"
	domainerrors "abacus/internal/domain/errors"
	mockusecase "abacus/internal/mocks/usecase"
	"abacus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authenticatedUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "ada",
		Email:    "ada@example.com",
		IsActive: true,
	}
}

func setCurrentUser(c echo.Context, user *entity.User) {
	c.Set(middleware.ContextKeyCurrentUser, user)
	c.Set(middleware.ContextKeyUserID, user.ID)
}

func TestCalculationHandler_Create_Success(t *testing.T) {
	mockUC := mockusecase.NewMockCalculationUsecase(t)
	handler := NewCalculationHandler(mockUC, slog.Default())
	user := authenticatedUser()

	calcID := uuid.New()
	mockUC.EXPECT().
		Create(mock.Anything, user, mock.AnythingOfType("*usecase.CreateCalculationInput")).
		Return(&usecase.CalculationView{
			ID:        calcID,
			UserID:    user.ID,
			Type:      "addition",
			Inputs:    []float64{1, 2, 3},
			Result:    6,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}, nil)

	c, rec := newEchoContext(t, http.MethodPost, "/calculations", `{"type": "addition", "inputs": [1, 2, 3]}`)
	setCurrentUser(c, user)

	err := handler.Create(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), calcID.String())
	assert.Contains(t, rec.Body.String(), `"result":6`)
}

func TestCalculationHandler_Create_NoAuthenticatedUser(t *testing.T) {
	mockUC := mockusecase.NewMockCalculationUsecase(t)
	handler := NewCalculationHandler(mockUC, slog.Default())

	c, rec := newEchoContext(t, http.MethodPost, "/calculations", `{"type": "addition", "inputs": [1, 2]}`)

	err := handler.Create(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestCalculationHandler_Create_TooFewInputs(t *testing.T) {
	mockUC := mockusecase.NewMockCalculationUsecase(t)
	handler := NewCalculationHandler(mockUC, slog.Default())

	c, _ := newEchoContext(t, http.MethodPost, "/calculations", `{"type": "addition", "inputs": [1]}`)
	setCurrentUser(c, authenticatedUser())

	err := handler.Create(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCalculationHandler_List_Success(t *testing.T) {
	mockUC := mockusecase.NewMockCalculationUsecase(t)
	handler := NewCalculationHandler(mockUC, slog.Default())
	user := authenticatedUser()

	mockUC.EXPECT().
		List(mock.Anything, user).
		Return([]*usecase.CalculationView{
			{ID: uuid.New(), UserID: user.ID, Type: "addition", Inputs: []float64{1, 2}, Result: 3},
			{ID: uuid.New(), UserID: user.ID, Type: "division", Inputs: []float64{10, 2}, Result: 5},
		}, nil)

	c, rec := newEchoContext(t, http.MethodGet, "/calculations", "")
	setCurrentUser(c, user)

	err := handler.List(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"addition"`)
	assert.Contains(t, rec.Body.String(), `"type":"division"`)
}

func TestCalculationHandler_Get_Success(t *testing.T) {
	mockUC := mockusecase.NewMockCalculationUsecase(t)
	handler := NewCalculationHandler(mockUC, slog.Default())
	user := authenticatedUser()

	calcID := uuid.New()
	mockUC.EXPECT().
		Get(mock.Anything, user, calcID).
		Return(&usecase.CalculationView{
			ID:     calcID,
			UserID: user.ID,
			Type:   "multiplication",
			Inputs: []float64{4, 5},
			Result: 20,
		}, nil)

	c, rec := newEchoContext(t, http.MethodGet, "/calculations/"+calcID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(calcID.String())
	setCurrentUser(c, user)

	err := handler.Get(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"result":20`)
}

func TestCalculationHandler_Get_InvalidID(t *testing.T) {
	mockUC := mockusecase.NewMockCalculationUsecase(t)
	handler := NewCalculationHandler(mockUC, slog.Default())

	c, _ := newEchoContext(t, http.MethodGet, "/calculations/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	setCurrentUser(c, authenticatedUser())

	err := handler.Get(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCalculationHandler_Get_NotFound(t *testing.T) {
	mockUC := mockusecase.NewMockCalculationUsecase(t)
	handler := NewCalculationHandler(mockUC, slog.Default())
	user := authenticatedUser()

	calcID := uuid.New()
	mockUC.EXPECT().
		Get(mock.Anything, user, calcID).
		Return(nil, domainerrors.ErrCalculationNotFound)

	c, _ := newEchoContext(t, http.MethodGet, "/calculations/"+calcID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(calcID.String())
	setCurrentUser(c, user)

	err := handler.Get(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCalculationNotFound)
}

func TestCalculationHandler_Update_Success(t *testing.T) {
	mockUC := mockusecase.NewMockCalculationUsecase(t)
	handler := NewCalculationHandler(mockUC, slog.Default())
	user := authenticatedUser()

	calcID := uuid.New()
	mockUC.EXPECT().
		Update(mock.Anything, user, calcID, mock.AnythingOfType("*usecase.UpdateCalculationInput")).
		Return(&usecase.CalculationView{
			ID:     calcID,
			UserID: user.ID,
			Type:   "subtraction",
			Inputs: []float64{100, 30, 20},
			Result: 50,
		}, nil)

	c, rec := newEchoContext(t, http.MethodPut, "/calculations/"+calcID.String(), `{"inputs": [100, 30, 20]}`)
	c.SetParamNames("id")
	c.SetParamValues(calcID.String())
	setCurrentUser(c, user)

	err := handler.Update(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"result":50`)
}

func TestCalculationHandler_Update_MissingInputs(t *testing.T) {
	mockUC := mockusecase.NewMockCalculationUsecase(t)
	handler := NewCalculationHandler(mockUC, slog.Default())

	calcID := uuid.New()
	c, _ := newEchoContext(t, http.MethodPut, "/calculations/"+calcID.String(), `{}`)
	c.SetParamNames("id")
	c.SetParamValues(calcID.String())
	setCurrentUser(c, authenticatedUser())

	err := handler.Update(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCalculationHandler_Delete_Success(t *testing.T) {
	mockUC := mockusecase.NewMockCalculationUsecase(t)
	handler := NewCalculationHandler(mockUC, slog.Default())
	user := authenticatedUser()

	calcID := uuid.New()
	mockUC.EXPECT().
		Delete(mock.Anything, user, calcID).
		Return(nil)

	c, rec := newEchoContext(t, http.MethodDelete, "/calculations/"+calcID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(calcID.String())
	setCurrentUser(c, user)

	err := handler.Delete(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestCalculationHandler_Delete_NotFound(t *testing.T) {
	mockUC := mockusecase.NewMockCalculationUsecase(t)
	handler := NewCalculationHandler(mockUC, slog.Default())
	user := authenticatedUser()

	calcID := uuid.New()
	mockUC.EXPECT().
		Delete(mock.Anything, user, calcID).
		Return(domainerrors.ErrCalculationNotFound)

	c, _ := newEchoContext(t, http.MethodDelete, "/calculations/"+calcID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(calcID.String())
	setCurrentUser(c, user)

	err := handler.Delete(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCalculationNotFound)
}
