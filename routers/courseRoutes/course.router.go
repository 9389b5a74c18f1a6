package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseController "luma/controllers/course"
	"luma/middleware"
	courseValidator "luma/validators/course"
)

// SetupCourseRoutes sets up course browsing and admin course management
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course listing and details (published courses)
	courseGroup.Get("/list", middleware.JWTMiddleware, courseValidator.CourseList(), courseController.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, courseController.GetCourseDetails)

	// Admin course management
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Post("/", courseValidator.CreateCourse(), courseController.AdminCreateCourse)
	adminGroup.Put("/:id", courseValidator.UpdateCourse(), courseController.AdminUpdateCourse)
	adminGroup.Delete("/:id", courseController.AdminDeleteCourse)
	adminGroup.Post("/module", courseValidator.CreateModule(), courseController.AdminCreateModule)
}
