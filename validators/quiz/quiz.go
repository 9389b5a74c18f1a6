package quizValidator

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	quizController "luma/controllers/quiz"
	"luma/middleware"
)

func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleID uint                             `json:"module_id"`
			Answers  []quizController.SubmittedAnswer `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleID == 0 {
			errors["module_id"] = "Module id is required!"
		}
		if len(reqData.Answers) == 0 {
			errors["answers"] = "Please submit at least one answer!"
		}
		for i, a := range reqData.Answers {
			if a.QuestionID == 0 || a.SelectedAnswerID == 0 {
				errors[fmt.Sprintf("answers[%d]", i)] = "Question id and selected answer id are required!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizSubmit", reqData)
		return c.Next()
	}
}

// CreateQuestion enforces the question shape: at least two answers, exactly
// one marked correct.
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleID   uint   `json:"module_id"`
			Question   string `json:"question"`
			OrderIndex int    `json:"order_index"`
			Answers    []struct {
				AnswerText string `json:"answer_text"`
				IsCorrect  bool   `json:"is_correct"`
			} `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleID == 0 {
			errors["module_id"] = "Module id is required!"
		}
		if strings.TrimSpace(reqData.Question) == "" {
			errors["question"] = "Question text is required!"
		}
		if len(reqData.Answers) < 2 {
			errors["answers"] = "A question needs at least two answers!"
		} else {
			correctCount := 0
			for i, a := range reqData.Answers {
				if strings.TrimSpace(a.AnswerText) == "" {
					errors[fmt.Sprintf("answers[%d]", i)] = "Answer text is required!"
				}
				if a.IsCorrect {
					correctCount++
				}
			}
			if correctCount != 1 {
				errors["answers"] = "Exactly one answer must be marked correct!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}
