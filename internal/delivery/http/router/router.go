// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"abacus/internal/delivery/http/middleware"
	"abacus/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	CalculationHandler *handler.CalculationHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	calculationHandler *handler.CalculationHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		calculationHandler: params.CalculationHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	// Calculation routes that require authentication
	calcGroup := e.Group("/calculations")
	calcGroup.Use(r.authMiddleware.Authenticate)
	{
		calcGroup.POST("", r.calculationHandler.Create)
		calcGroup.GET("", r.calculationHandler.List)
		calcGroup.GET("/:id", r.calculationHandler.Get)
		calcGroup.PUT("/:id", r.calculationHandler.Update)
		calcGroup.DELETE("/:id", r.calculationHandler.Delete)
	}
}
