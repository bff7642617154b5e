// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"iriscan/internal/delivery/http/middleware"
	"iriscan/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ScanHandler        *handler.ScanHandler
	HistoryHandler     *handler.HistoryHandler
	EntitlementHandler *handler.EntitlementHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	scanHandler        *handler.ScanHandler
	historyHandler     *handler.HistoryHandler
	entitlementHandler *handler.EntitlementHandler
	identityMiddleware *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		scanHandler:        params.ScanHandler,
		historyHandler:     params.HistoryHandler,
		entitlementHandler: params.EntitlementHandler,
		identityMiddleware: params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// All scan API routes require a resolved identity (Bearer token or device ID)
	api := e.Group("/v1")
	api.Use(r.identityMiddleware.Resolve)
	{
		api.POST("/scans", r.scanHandler.Submit)

		api.GET("/history", r.historyHandler.List)
		api.DELETE("/history", r.historyHandler.Clear)

		api.GET("/entitlement", r.entitlementHandler.Snapshot)
		api.POST("/purchases/verify", r.entitlementHandler.VerifyPurchase)
	}

	// Sync endpoints replay buffered writes; meaningful only when signed in
	syncGroup := api.Group("/sync")
	syncGroup.Use(r.identityMiddleware.RequireAuthenticated)
	{
		syncGroup.POST("/history", r.historyHandler.Sync)
		syncGroup.POST("/entitlement", r.entitlementHandler.Sync)
	}
}
