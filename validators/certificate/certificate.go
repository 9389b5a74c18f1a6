package certificateValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"luma/middleware"
)

// GenerateCertificate requires all three inputs before any I/O happens
func GenerateCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID          uint   `json:"user_id"`
			CourseID        uint   `json:"course_id"`
			CertificateName string `json:"certificate_name"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["user_id"] = "User id is required!"
		}
		if reqData.CourseID == 0 {
			errors["course_id"] = "Course id is required!"
		}
		if strings.TrimSpace(reqData.CertificateName) == "" {
			errors["certificate_name"] = "Certificate name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGenerate", reqData)
		return c.Next()
	}
}

func InferLayout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint `json:"course_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"course_id": "Course id is required!",
			})
		}

		c.Locals("validatedLayoutInfer", reqData)
		return c.Next()
	}
}

func UpdateLayout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID        uint   `json:"course_id"`
			NameX           int    `json:"name_x"`
			NameY           int    `json:"name_y"`
			NameMaxWidth    int    `json:"name_max_width"`
			NameFontSize    int    `json:"name_font_size"`
			NameMinFontSize int    `json:"name_min_font_size"`
			DateX           int    `json:"date_x"`
			DateY           int    `json:"date_y"`
			NameColor       string `json:"name_color"`
			DateColor       string `json:"date_color"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course id is required!"
		}
		if reqData.NameX < 0 || reqData.NameY < 0 || reqData.DateX < 0 || reqData.DateY < 0 {
			errors["coordinates"] = "Coordinates must not be negative!"
		}
		if reqData.NameMinFontSize > 0 && reqData.NameFontSize > 0 && reqData.NameMinFontSize > reqData.NameFontSize {
			errors["name_min_font_size"] = "Minimum font size cannot exceed the base font size!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLayoutUpdate", reqData)
		return c.Next()
	}
}

func ResetCertification() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   uint `json:"user_id"`
			CourseID uint `json:"course_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["user_id"] = "User id is required!"
		}
		if reqData.CourseID == 0 {
			errors["course_id"] = "Course id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReset", reqData)
		return c.Next()
	}
}
