package adminController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"luma/appstate"
	"luma/database"
	"luma/middleware"
	"luma/models"
	"luma/storage"
	"luma/utils"
)

// CleanupMarketingImages purges marketing images older than 24 hours. The
// same purge also runs hourly on the cron scheduler and once at boot.
func CleanupMarketingImages(store *storage.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deleted, err := utils.PurgeExpiredMarketingImages(database.Database.Db, store)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Cleanup failed!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Cleanup completed successfully!", fiber.Map{
			"deleted": deleted,
		})
	}
}

// UploadMarketingImage stores a short-lived promotional image
func UploadMarketingImage(store *storage.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
		}

		data, contentType, err := utils.ReadMultipartFile(fileHeader)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read uploaded file!", nil)
		}

		objectPath := utils.UniqueObjectName("marketing", fileHeader.Filename)
		if err := store.Upload(objectPath, contentType, data); err != nil {
			log.Printf("Marketing image upload failed: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload image!", nil)
		}

		image := models.MarketingImage{
			Title:       c.FormValue("title"),
			FileURL:     store.PublicURL(objectPath),
			StoragePath: objectPath,
		}

		if err := database.Database.Db.Create(&image).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record image!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Marketing image uploaded successfully!", image)
	}
}

// GetAdminMode returns the persisted admin-mode flag
func GetAdminMode(st *appstate.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin mode fetched successfully!", fiber.Map{
			"admin_mode": st.GetAdminMode(),
		})
	}
}

// SetAdminMode mutates and immediately persists the admin-mode flag
func SetAdminMode(st *appstate.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			AdminMode *bool `json:"admin_mode"`
		})
		if err := c.BodyParser(reqData); err != nil || reqData.AdminMode == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "admin_mode is required!", nil)
		}

		if err := st.SetAdminMode(*reqData.AdminMode); err != nil {
			log.Printf("Failed to persist admin mode: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save admin mode!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin mode updated successfully!", fiber.Map{
			"admin_mode": *reqData.AdminMode,
		})
	}
}
