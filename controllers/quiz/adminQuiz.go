package quizController

import (
	"github.com/gofiber/fiber/v2"

	"luma/database"
	"luma/middleware"
	courseModels "luma/models/course"
)

// AdminCreateQuestion creates a quiz question with its answer options. The
// validator guarantees at least two answers with exactly one marked correct.
func AdminCreateQuestion(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuestion").(*struct {
		ModuleID   uint   `json:"module_id"`
		Question   string `json:"question"`
		OrderIndex int    `json:"order_index"`
		Answers    []struct {
			AnswerText string `json:"answer_text"`
			IsCorrect  bool   `json:"is_correct"`
		} `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	question := courseModels.QuizQuestion{
		ModuleID:   reqData.ModuleID,
		Question:   reqData.Question,
		OrderIndex: reqData.OrderIndex,
	}
	if err := db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	answers := make([]courseModels.QuizAnswer, len(reqData.Answers))
	for i, a := range reqData.Answers {
		answers[i] = courseModels.QuizAnswer{
			QuestionID: question.ID,
			AnswerText: a.AnswerText,
			IsCorrect:  a.IsCorrect,
			OrderIndex: i,
		}
	}
	if err := db.Create(&answers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create answers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", fiber.Map{
		"question": question,
		"answers":  len(answers),
	})
}

// AdminDeleteQuestion soft deletes a question and its answers
func AdminDeleteQuestion(c *fiber.Ctx) error {
	questionID, err := c.ParamsInt("question_id")
	if err != nil || questionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question id!", nil)
	}

	db := database.Database.Db

	var question courseModels.QuizQuestion
	if err := db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsDeleted = true
	if err := db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	db.Model(&courseModels.QuizAnswer{}).Where("question_id = ?", questionID).Update("is_deleted", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
