// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"recipebox/internal/delivery/api/middleware"
	"recipebox/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	RecipeHandler  *handler.RecipeHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	recipeHandler  *handler.RecipeHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		recipeHandler:  params.RecipeHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Recipe routes, all behind the bearer token check
	recipesGroup := api.Group("/recipes")
	recipesGroup.Use(r.authMiddleware.Authenticate)
	{
		recipesGroup.POST("/search", r.authMiddleware.WithIdentity(r.recipeHandler.Search))
		recipesGroup.POST("/save", r.authMiddleware.WithIdentity(r.recipeHandler.Save))
		recipesGroup.GET("/saved", r.authMiddleware.WithIdentity(r.recipeHandler.ListSaved))
		recipesGroup.DELETE("/saved/:id", r.authMiddleware.WithIdentity(r.recipeHandler.DeleteSaved))
	}
}
