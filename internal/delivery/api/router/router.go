// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"printshop/internal/delivery/api/middleware"
	"printshop/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler   *handler.OrderHandler
	StockHandler   *handler.StockHandler
	MonitorHandler *handler.MonitorHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler   *handler.OrderHandler
	stockHandler   *handler.StockHandler
	monitorHandler *handler.MonitorHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:   params.OrderHandler,
		stockHandler:   params.StockHandler,
		monitorHandler: params.MonitorHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Customer facing; the usecase scopes customers to their own orders
	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.PUT("/:id", r.orderHandler.UpdateOrder)
		ordersGroup.GET("/:id/qr", r.orderHandler.OrderQRCode)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireStaff)

	adminOrders := adminGroup.Group("/orders")
	{
		adminOrders.PATCH("/:id/status", r.orderHandler.UpdateStatus)
		adminOrders.PATCH("/:id/delivery", r.orderHandler.UpdateDeliveryInfo)
		adminOrders.PATCH("/:id/expected-delivery", r.orderHandler.UpdateExpectedDeliveryDate)
		adminOrders.POST("/:id/cancel", r.orderHandler.CancelOrder)
	}

	stockGroup := adminGroup.Group("/stock")
	{
		stockGroup.POST("/purchases", r.stockHandler.CreatePurchase)
		stockGroup.POST("/purchases/:id/receipts", r.stockHandler.ReceiveStock)
		stockGroup.POST("/adjustments", r.stockHandler.AdjustStock)
		stockGroup.GET("/products/:id/transactions", r.stockHandler.ListTransactions)

		stockGroup.GET("/reasons", r.stockHandler.ListReasons)
		stockGroup.POST("/reasons", r.stockHandler.CreateReason)
		stockGroup.PUT("/reasons/:id", r.stockHandler.RenameReason)
		stockGroup.DELETE("/reasons/:id", r.stockHandler.DeleteReason)
	}

	adminGroup.GET("/alerts", r.monitorHandler.ListAlerts)
	adminGroup.POST("/alerts/:id/resolve", r.monitorHandler.ResolveAlert)
	adminGroup.GET("/audit-logs", r.monitorHandler.QueryAuditLogs)

	devicesGroup := adminGroup.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
