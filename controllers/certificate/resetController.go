package certificateController

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"luma/database"
	"luma/middleware"
	courseModels "luma/models/course"
	"luma/storage"
)

// ResetCertification deletes a learner's certification artifacts for a
// course: photo objects and the certificate object best-effort, then the
// photo rows and the certification row. Database deletes run child-before-
// parent and abort the operation on error.
func ResetCertification(store *storage.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedReset").(*struct {
			UserID   uint `json:"user_id"`
			CourseID uint `json:"course_id"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		db := database.Database.Db
		var steps []StepResult

		// Photo objects (best-effort)
		var photos []courseModels.CertificationPhoto
		if err := db.Where("user_id = ? AND course_id = ?", reqData.UserID, reqData.CourseID).Find(&photos).Error; err != nil {
			steps = append(steps, fatalStep("fetch photos", err.Error()))
		} else {
			paths := make([]string, len(photos))
			for i, p := range photos {
				if p.StoragePath != "" {
					paths[i] = p.StoragePath
				} else {
					paths[i] = store.PathFromPublicURL(p.FileURL)
				}
			}
			steps = append(steps, deleteObjects(store, "delete photo object", paths)...)
		}

		// Certificate object (best-effort)
		var cert courseModels.Certification
		if err := db.Where("user_id = ? AND course_id = ?", reqData.UserID, reqData.CourseID).First(&cert).Error; err == nil && cert.CertificateURL != "" {
			steps = append(steps, deleteObjects(store, "delete certificate object", []string{store.PathFromPublicURL(cert.CertificateURL)})...)
		}

		// Rows, child before parent (fatal on error)
		if _, _, fatal := Summarize(steps); fatal == nil {
			if err := db.Unscoped().Where("user_id = ? AND course_id = ?", reqData.UserID, reqData.CourseID).Delete(&courseModels.CertificationPhoto{}).Error; err != nil {
				steps = append(steps, fatalStep("delete photo rows", err.Error()))
			} else {
				steps = append(steps, okStep("delete photo rows"))
				if err := db.Unscoped().Where("user_id = ? AND course_id = ?", reqData.UserID, reqData.CourseID).Delete(&courseModels.Certification{}).Error; err != nil {
					steps = append(steps, fatalStep("delete certification row", err.Error()))
				} else {
					steps = append(steps, okStep("delete certification row"))
				}
			}
		}

		okCount, skippedCount, fatal := Summarize(steps)
		if fatal != nil {
			log.Printf("Certification reset aborted for user %d course %d at %q: %s", reqData.UserID, reqData.CourseID, fatal.Name, fatal.Reason)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset certification!", fiber.Map{
				"steps": steps,
				"error": fatal.Reason,
			})
		}

		for _, s := range steps {
			if s.Status == StepSkipped {
				log.Printf("Certification reset: skipped %s: %s", s.Name, s.Reason)
			}
		}

		message := fmt.Sprintf("Certification reset successfully! %d steps completed, %d skipped.", okCount, skippedCount)
		return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
			"steps": steps,
		})
	}
}
