package certificateController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"luma/apperrors"
	"luma/database"
	"luma/middleware"
	courseModels "luma/models/course"
	"luma/storage"
	"luma/utils"
	"luma/vision"
)

// InferLayout asks the vision model for name/date coordinates on the current
// certificate template and upserts the result as the course's layout record.
func InferLayout(store *storage.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedLayoutInfer").(*struct {
			CourseID uint `json:"course_id"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		var course courseModels.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}

		templateURL := store.PublicURL(storage.TemplatePath)

		suggestion, err := vision.InferLayout(templateURL)
		if err != nil {
			log.Printf("Layout inference failed for course %d: %v", reqData.CourseID, err)
			return middleware.JsonResponse(c, apperrors.Status(err), false, "Failed to infer certificate layout!", fiber.Map{
				"error": err.Error(),
			})
		}

		layout, err := upsertLayout(reqData.CourseID, func(l *courseModels.CertificateLayout) {
			l.NameX = suggestion.NameX
			l.NameY = suggestion.NameY
			l.NameMaxWidth = suggestion.NameMaxWidth
			l.DateX = suggestion.DateX
			l.DateY = suggestion.DateY
			l.TemplateWidth = suggestion.TemplateWidth
			l.TemplateHeight = suggestion.TemplateHeight
			if l.TemplatePath == "" {
				l.TemplatePath = storage.TemplatePath
			}
		})
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save certificate layout!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate layout inferred successfully!", layout)
	}
}

// UpdateLayout applies a manual admin edit (e.g. drag-repositioning) to the
// course's layout record
func UpdateLayout(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLayoutUpdate").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	layout, err := upsertLayout(reqData.CourseID, func(l *courseModels.CertificateLayout) {
		l.NameX = reqData.NameX
		l.NameY = reqData.NameY
		l.NameMaxWidth = reqData.NameMaxWidth
		l.NameFontSize = reqData.NameFontSize
		l.NameMinFontSize = reqData.NameMinFontSize
		l.DateX = reqData.DateX
		l.DateY = reqData.DateY
		if reqData.NameColor != "" {
			l.NameColor = reqData.NameColor
		}
		if reqData.DateColor != "" {
			l.DateColor = reqData.DateColor
		}
		if l.TemplatePath == "" {
			l.TemplatePath = storage.TemplatePath
		}
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save certificate layout!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate layout updated successfully!", layout)
}

// GetLayout returns the layout record for a course
func GetLayout(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("course_id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var layout courseModels.CertificateLayout
	if err := database.Database.Db.Where("course_id = ?", courseID).First(&layout).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate layout not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate layout fetched successfully!", layout)
}

// UploadTemplate replaces the deployment's certificate template image
func UploadTemplate(store *storage.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("template")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Template image file is required!", nil)
		}

		data, contentType, err := utils.ReadMultipartFile(fileHeader)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read uploaded file!", nil)
		}

		if err := store.Upload(storage.TemplatePath, contentType, data); err != nil {
			log.Printf("Template upload failed: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload template!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Template uploaded successfully!", fiber.Map{
			"template_url": store.PublicURL(storage.TemplatePath),
		})
	}
}

// upsertLayout updates the course's layout row, creating it when absent
func upsertLayout(courseID uint, apply func(*courseModels.CertificateLayout)) (*courseModels.CertificateLayout, error) {
	db := database.Database.Db

	var layout courseModels.CertificateLayout
	if err := db.Where("course_id = ?", courseID).First(&layout).Error; err != nil {
		layout = courseModels.CertificateLayout{CourseID: courseID}
		apply(&layout)
		if err := db.Create(&layout).Error; err != nil {
			return nil, err
		}
		return &layout, nil
	}

	apply(&layout)
	if err := db.Save(&layout).Error; err != nil {
		return nil, err
	}
	return &layout, nil
}
