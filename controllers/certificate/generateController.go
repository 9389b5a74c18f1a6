package certificateController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/image/font/opentype"

	"luma/apperrors"
	"luma/certgen"
	"luma/database"
	"luma/middleware"
	"luma/models"
	courseModels "luma/models/course"
	"luma/storage"
	"luma/utils"
)

// customFontObject is the well-known path of an optional admin-uploaded font
const customFontObject = "certificates/fonts/certificate.ttf"

// GenerateCertificate renders a certificate for a learner and upserts the
// certification record. Regenerating replaces the row but keeps old image
// objects in storage.
func GenerateCertificate(store *storage.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedGenerate").(*struct {
			UserID          uint   `json:"user_id"`
			CourseID        uint   `json:"course_id"`
			CertificateName string `json:"certificate_name"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		db := database.Database.Db

		var user models.User
		if err := db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&user).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}

		var course courseModels.Course
		if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}

		// Layout record is optional; the renderer falls back to its defaults
		var layout *certgen.Layout
		templatePath := storage.TemplatePath
		var layoutRow courseModels.CertificateLayout
		if err := db.Where("course_id = ?", reqData.CourseID).First(&layoutRow).Error; err == nil {
			layout = &certgen.Layout{
				NameX:           layoutRow.NameX,
				NameY:           layoutRow.NameY,
				NameMaxWidth:    layoutRow.NameMaxWidth,
				NameFontSize:    layoutRow.NameFontSize,
				NameMinFontSize: layoutRow.NameMinFontSize,
				DateX:           layoutRow.DateX,
				DateY:           layoutRow.DateY,
				NameColor:       layoutRow.NameColor,
				DateColor:       layoutRow.DateColor,
			}
			if layoutRow.TemplatePath != "" {
				templatePath = layoutRow.TemplatePath
			}
		}

		templateBytes, err := store.Download(templatePath)
		if err != nil {
			log.Printf("Template fetch failed: %v", err)
			return middleware.JsonResponse(c, apperrors.Status(err), false, "Certificate template not found!", nil)
		}

		now := time.Now()
		result, err := certgen.Render(templateBytes, loadFont(store), reqData.CertificateName, layout, now)
		if err != nil {
			log.Printf("Certificate render failed for user %d course %d: %v", reqData.UserID, reqData.CourseID, err)
			return middleware.JsonResponse(c, apperrors.Status(err), false, "Failed to render certificate!", nil)
		}

		objectPath := storage.CertificatePath(reqData.UserID, reqData.CourseID, now)
		if err := store.Upload(objectPath, "image/png", result.PNG); err != nil {
			log.Printf("Certificate upload failed: %v", err)
			return middleware.JsonResponse(c, apperrors.Status(err), false, "Failed to store certificate image!", nil)
		}

		certificateURL := store.PublicURL(objectPath)

		// Upsert on (user, course). The previously uploaded object is not
		// deleted here; see the reset flow for cleanup.
		var cert courseModels.Certification
		if err := db.Where("user_id = ? AND course_id = ?", reqData.UserID, reqData.CourseID).First(&cert).Error; err != nil {
			cert = courseModels.Certification{
				UserID:          reqData.UserID,
				CourseID:        reqData.CourseID,
				CertificateName: reqData.CertificateName,
				CertificateURL:  certificateURL,
				IssuedAt:        now,
			}
			err = db.Create(&cert).Error
		} else {
			cert.CertificateName = reqData.CertificateName
			cert.CertificateURL = certificateURL
			cert.IssuedAt = now
			cert.IsDeleted = false
			err = db.Save(&cert).Error
		}
		if err != nil {
			// The uploaded object is orphaned at this point; it is not rolled back.
			log.Printf("Certification upsert failed: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record certification!", nil)
		}

		go func(email, userName, courseName string) {
			if err := utils.SendCertificateEmail(email, userName, courseName, certificateURL); err != nil {
				log.Printf("Certificate email failed: %v", err)
			}
		}(user.Email, user.Name, course.Title)

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate generated successfully!", fiber.Map{
			"certificate_url": certificateURL,
			"dimensions": fiber.Map{
				"width":  result.Width,
				"height": result.Height,
			},
			"font_size": result.NameFontSize,
		})
	}
}

// GetMyCertifications lists the caller's earned certificates
func GetMyCertifications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type CertificationWithCourse struct {
		courseModels.Certification
		CourseName string `json:"course_name"`
	}

	var certs []courseModels.Certification
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("issued_at desc").Find(&certs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certifications!", nil)
	}

	result := make([]CertificationWithCourse, len(certs))
	for i, cert := range certs {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", cert.CourseID).First(&course)
		result[i] = CertificationWithCourse{
			Certification: cert,
			CourseName:    course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certifications fetched successfully!", fiber.Map{
		"certifications": result,
		"total":          len(result),
	})
}

// loadFont fetches the optional custom font from storage, falling back to the
// bundled one when absent or unusable
func loadFont(store *storage.Client) *opentype.Font {
	data, err := store.Download(customFontObject)
	if err != nil {
		return certgen.DefaultFont()
	}
	fnt, err := certgen.ParseFont(data)
	if err != nil {
		log.Printf("Custom font is unusable, using bundled font: %v", err)
		return certgen.DefaultFont()
	}
	return fnt
}
