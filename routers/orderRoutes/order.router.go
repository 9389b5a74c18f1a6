package orderRoutes

import (
	"github.com/gofiber/fiber/v2"

	orderController "luma/controllers/order"
	"luma/middleware"
	orderValidator "luma/validators/order"
)

// SetupOrderRoutes sets up member order tracking and admin order management
func SetupOrderRoutes(app *fiber.App) {
	orderGroup := app.Group("/orders", middleware.JWTMiddleware)

	orderGroup.Get("/", orderController.GetMyOrders)
	orderGroup.Post("/:id/tracking/seen", orderController.MarkTrackingSeen)

	adminGroup := app.Group("/admin/orders", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Get("/", orderController.AdminListOrders)
	adminGroup.Post("/", orderValidator.CreateOrder(), orderController.AdminCreateOrder)
	adminGroup.Put("/:id", orderValidator.UpdateOrder(), orderController.AdminUpdateOrder)
}
