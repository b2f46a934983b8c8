// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stockroom/internal/delivery/http/middleware"
	"stockroom/internal/delivery/http/router/handler"
	"stockroom/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	BrandHandler   *handler.BrandHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	brandHandler   *handler.BrandHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		brandHandler:   params.BrandHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The paths mirror the API already deployed in the field.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes; signin is the registration endpoint, naming kept as is.
	userGroup := e.Group("/api/users")
	{
		userGroup.POST("/signin", r.userHandler.SignIn)
		userGroup.POST("/login", r.userHandler.Login)
	}

	// Inventory routes require a valid token.
	inventoryGroup := e.Group("/api/inventory")
	inventoryGroup.Use(r.authMiddleware.Authenticate)
	{
		brandGroup := inventoryGroup.Group("/brands")
		{
			brandGroup.POST("", r.brandHandler.Create)
			brandGroup.GET("", r.brandHandler.List)
			brandGroup.GET("/:id", r.brandHandler.Get)
			brandGroup.PUT("/:id", r.brandHandler.Update)
			brandGroup.DELETE("/:id", r.brandHandler.Delete)
		}

		productGroup := inventoryGroup.Group("/products")
		{
			productGroup.POST("", r.productHandler.Create)
			productGroup.GET("/low-stock", r.productHandler.ListLowStock)
			productGroup.GET("/invoice", r.productHandler.ListInvoice)
			productGroup.GET("/brand/:brandID", r.productHandler.ListByBrand)
			productGroup.GET("/:id", r.productHandler.Get)
			productGroup.PUT("/:id", r.productHandler.Update)
			// Delete without an ID answers 400, matching the deployed API.
			productGroup.DELETE("", r.productHandler.Delete)
			productGroup.DELETE("/:id", r.productHandler.Delete)
		}
	}

	// Order routes require a valid token.
	orderGroup := e.Group("/api/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
	}

	// Device routes require the admin role on top of authentication.
	deviceGroup := e.Group("/api/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	deviceGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		deviceGroup.POST("", r.deviceHandler.Register)
		deviceGroup.GET("", r.deviceHandler.List)
		deviceGroup.DELETE("/:id", r.deviceHandler.Deactivate)
	}
}
