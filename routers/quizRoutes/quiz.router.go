package quizRoutes

import (
	"github.com/gofiber/fiber/v2"

	quizController "luma/controllers/quiz"
	"luma/middleware"
	quizValidator "luma/validators/quiz"
)

// SetupQuizRoutes sets up quiz viewing, verification and admin authoring
func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quiz", middleware.JWTMiddleware)

	// Restricted view: questions and answers without correctness flags
	quizGroup.Get("/module/:module_id/questions", quizController.GetModuleQuestions)
	quizGroup.Get("/module/:module_id/attempts", quizController.GetMyAttempts)

	// Server-side grading; the only place correct answers are revealed
	quizGroup.Post("/verify", quizValidator.SubmitQuiz(), quizController.VerifyQuiz)

	// Admin question authoring
	adminGroup := app.Group("/admin/quiz", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Post("/question", quizValidator.CreateQuestion(), quizController.AdminCreateQuestion)
	adminGroup.Delete("/question/:question_id", quizController.AdminDeleteQuestion)
}
