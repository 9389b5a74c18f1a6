package certificateRoutes

import (
	"github.com/gofiber/fiber/v2"

	certificateController "luma/controllers/certificate"
	"luma/middleware"
	"luma/storage"
	certificateValidator "luma/validators/certificate"
)

// SetupCertificateRoutes sets up certificate generation, evidence photos and
// the admin layout/reset endpoints
func SetupCertificateRoutes(app *fiber.App, store *storage.Client) {
	certGroup := app.Group("/certificate", middleware.JWTMiddleware)

	certGroup.Post("/generate", certificateValidator.GenerateCertificate(), certificateController.GenerateCertificate(store))

	userGroup := app.Group("/user", middleware.JWTMiddleware)
	userGroup.Get("/certificates", certificateController.GetMyCertifications)

	// Certification evidence photos
	photoGroup := app.Group("/course/:course_id/photos", middleware.JWTMiddleware)
	photoGroup.Post("/", certificateController.UploadCertificationPhoto(store))
	photoGroup.Get("/", certificateController.ListCertificationPhotos)

	// Admin: template, layout and destructive reset
	adminGroup := app.Group("/admin/certificate", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Post("/template", certificateController.UploadTemplate(store))
	adminGroup.Post("/layout/infer", certificateValidator.InferLayout(), certificateController.InferLayout(store))
	adminGroup.Put("/layout", certificateValidator.UpdateLayout(), certificateController.UpdateLayout)
	adminGroup.Get("/layout/:course_id", certificateController.GetLayout)
	adminGroup.Post("/reset", certificateValidator.ResetCertification(), certificateController.ResetCertification(store))
}
