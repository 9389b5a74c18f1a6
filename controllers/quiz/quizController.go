package quizController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"luma/database"
	"luma/middleware"
	courseModels "luma/models/course"
)

// GetModuleQuestions returns a module's questions and answer options. Answer
// correctness is never included in this view; QuizAnswer serializes without
// its is_correct column.
func GetModuleQuestions(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID, err := c.ParamsInt("module_id")
	if err != nil || moduleID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var questions []courseModels.QuizQuestion
	if err := database.Database.Db.Where("module_id = ? AND is_deleted = ?", moduleID, false).Order("order_index asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	type QuestionWithAnswers struct {
		courseModels.QuizQuestion
		Answers []courseModels.QuizAnswer `json:"answers"`
	}

	result := make([]QuestionWithAnswers, len(questions))
	for i, q := range questions {
		var answers []courseModels.QuizAnswer
		database.Database.Db.Where("question_id = ? AND is_deleted = ?", q.ID, false).Order("order_index asc").Find(&answers)
		result[i] = QuestionWithAnswers{QuizQuestion: q, Answers: answers}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", fiber.Map{
		"questions": result,
		"total":     len(result),
	})
}

// VerifyQuiz grades a submission server-side and records the attempt. The
// learner's identity comes from the bearer token, never the request body, and
// correct answers are only revealed in the response after grading.
func VerifyQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedQuizSubmit").(*struct {
		ModuleID uint              `json:"module_id"`
		Answers  []SubmittedAnswer `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	// Authoritative question set for the module
	var questions []courseModels.QuizQuestion
	if err := db.Where("module_id = ? AND is_deleted = ?", reqData.ModuleID, false).Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}
	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module has no quiz questions!", nil)
	}

	questionIDs := make([]uint, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
	}

	// Correct answers are read here with full database access; client-facing
	// views never see the is_correct column.
	var correctAnswers []courseModels.QuizAnswer
	if err := db.Where("question_id IN ? AND is_correct = ? AND is_deleted = ?", questionIDs, true, false).Find(&correctAnswers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify answers!", nil)
	}

	correctByQuestion := make(map[uint]uint, len(correctAnswers))
	for _, a := range correctAnswers {
		correctByQuestion[a.QuestionID] = a.ID
	}

	graded := Grade(len(questions), correctByQuestion, reqData.Answers)

	var attemptCount int64
	db.Model(&courseModels.QuizAttempt{}).Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, reqData.ModuleID, false).Count(&attemptCount)

	attempt := courseModels.QuizAttempt{
		UserID:        userID,
		ModuleID:      reqData.ModuleID,
		Score:         graded.Score,
		Total:         graded.Total,
		AttemptNumber: int(attemptCount) + 1,
	}
	if err := db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attempt!", nil)
	}

	// Response rows are best-effort; the attempt and score are already durable
	for _, mark := range graded.Responses {
		response := courseModels.QuizResponse{
			AttemptID:        attempt.ID,
			QuestionID:       mark.QuestionID,
			SelectedAnswerID: mark.SelectedAnswerID,
			IsCorrect:        mark.IsCorrect,
		}
		if err := db.Create(&response).Error; err != nil {
			log.Printf("Failed to record quiz response for attempt %d question %d: %v", attempt.ID, mark.QuestionID, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz verified successfully!", fiber.Map{
		"attempt_id":      attempt.ID,
		"score":           graded.Score,
		"total":           graded.Total,
		"attempt_number":  attempt.AttemptNumber,
		"correct_answers": correctByQuestion,
	})
}

// GetMyAttempts lists the caller's attempt history for a module
func GetMyAttempts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID, err := c.ParamsInt("module_id")
	if err != nil || moduleID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	var attempts []courseModels.QuizAttempt
	if err := database.Database.Db.Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, moduleID, false).Order("created_at desc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", fiber.Map{
		"attempts": attempts,
		"total":    len(attempts),
	})
}
