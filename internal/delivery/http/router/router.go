// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dealroom/internal/delivery/http/middleware"
	"dealroom/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	AssetHandler    *handler.AssetHandler
	NDAHandler      *handler.NDAHandler
	DataRoomHandler *handler.DataRoomHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	assetHandler    *handler.AssetHandler
	ndaHandler      *handler.NDAHandler
	dataRoomHandler *handler.DataRoomHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		assetHandler:    params.AssetHandler,
		ndaHandler:      params.NDAHandler,
		dataRoomHandler: params.DataRoomHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Everything except the health check and public file listing requires a
// verified bearer token.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public data rooms are browsable without credentials.
	e.GET("/assets/:id/public/list-files", r.dataRoomHandler.ListPublic)

	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetMe)
		userGroup.POST("/create", r.userHandler.Create)
		userGroup.PATCH("/:id/update", r.userHandler.Update)
		userGroup.PATCH("/:id/deactivate", r.userHandler.Deactivate)
	}

	usersGroup := e.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	{
		usersGroup.GET("", r.userHandler.List)
	}

	assetGroup := e.Group("/assets")
	assetGroup.Use(r.authMiddleware.Authenticate)
	{
		assetGroup.GET("/me", r.assetHandler.ListMine)
		assetGroup.GET("/:id", r.assetHandler.Get)
		assetGroup.PATCH("/:id", r.assetHandler.Update)
		assetGroup.POST("/:id/offer", r.assetHandler.Offer)

		assetGroup.POST("/:id/nda/request", r.ndaHandler.Request)
		assetGroup.POST("/:id/nda/upload", r.ndaHandler.Upload)
		assetGroup.POST("/:id/nda/confirm", r.ndaHandler.Confirm)
		assetGroup.GET("/:id/nda/view", r.ndaHandler.View)

		assetGroup.GET("/:id/private/list-files", r.dataRoomHandler.ListPrivate)
	}
}
