package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	"luma/appstate"
	adminController "luma/controllers/admin"
	"luma/middleware"
	"luma/storage"
)

// SetupAdminRoutes sets up back-office utilities: marketing images, cleanup
// and the persisted admin-mode flag
func SetupAdminRoutes(app *fiber.App, store *storage.Client, st *appstate.State) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Post("/marketing-images", adminController.UploadMarketingImage(store))
	adminGroup.Post("/cleanup/marketing-images", adminController.CleanupMarketingImages(store))

	adminGroup.Get("/mode", adminController.GetAdminMode(st))
	adminGroup.Put("/mode", adminController.SetAdminMode(st))
}
