package certificateController

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"luma/database"
	"luma/middleware"
	courseModels "luma/models/course"
	"luma/storage"
	"luma/utils"
)

// UploadCertificationPhoto stores one piece of photo evidence toward a
// learner's certification eligibility
func UploadCertificationPhoto(store *storage.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		courseID, err := c.ParamsInt("course_id")
		if err != nil || courseID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		var course courseModels.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}

		fileHeader, err := c.FormFile("photo")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Photo file is required!", nil)
		}

		data, contentType, err := utils.ReadMultipartFile(fileHeader)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read uploaded file!", nil)
		}

		folder := fmt.Sprintf("certificates/photos/%d/%d", userID, courseID)
		objectPath := utils.UniqueObjectName(folder, fileHeader.Filename)

		if err := store.Upload(objectPath, contentType, data); err != nil {
			log.Printf("Certification photo upload failed: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload photo!", nil)
		}

		photo := courseModels.CertificationPhoto{
			UserID:      userID,
			CourseID:    uint(courseID),
			FileURL:     store.PublicURL(objectPath),
			StoragePath: objectPath,
		}

		if err := database.Database.Db.Create(&photo).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record photo!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Photo uploaded successfully!", photo)
	}
}

// ListCertificationPhotos lists the caller's photo evidence for a course
func ListCertificationPhotos(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("course_id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var photos []courseModels.CertificationPhoto
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).Order("created_at asc").Find(&photos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch photos!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Photos fetched successfully!", fiber.Map{
		"photos": photos,
		"total":  len(photos),
	})
}
