// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"refill/internal/delivery/http/middleware"
	"refill/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	users := e.Group("/api/users")
	{
		users.POST("/register", r.accountHandler.Register)
		users.POST("/login", r.accountHandler.Login)
	}

	// Routes that require a valid session token
	authed := users.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/profile", r.accountHandler.Profile)
		authed.POST("/updateProfile", r.accountHandler.UpdateProfile)
		authed.POST("/updateBottles", r.accountHandler.UpdateBottles)
		authed.GET("/scoreboard", r.accountHandler.Scoreboard)
	}
}
