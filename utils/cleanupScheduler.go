package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"luma/models"
	"luma/storage"
)

// marketingImageTTL is how long marketing images are kept before being purged
const marketingImageTTL = 24 * time.Hour

// logCleanup logs cleanup events with timestamp
func logCleanup(message string) {
	log.Printf("[CLEANUP %s] %s", time.Now().Format(time.RFC3339), message)
}

// PurgeExpiredMarketingImages removes marketing images older than 24 hours:
// storage objects best-effort, then the rows in bulk. Returns the number of
// rows deleted.
func PurgeExpiredMarketingImages(db *gorm.DB, store *storage.Client) (int64, error) {
	cutoff := time.Now().Add(-marketingImageTTL)

	var images []models.MarketingImage
	if err := db.Where("created_at < ?", cutoff).Find(&images).Error; err != nil {
		logCleanup("Error fetching expired marketing images: " + err.Error())
		return 0, err
	}

	if len(images) == 0 {
		return 0, nil
	}

	ids := make([]uint, len(images))
	for i, img := range images {
		ids[i] = img.ID
		path := img.StoragePath
		if path == "" {
			path = store.PathFromPublicURL(img.FileURL)
		}
		if path == "" {
			continue
		}
		if err := store.Delete(path); err != nil {
			// A stale blob is invisible to users; keep going
			logCleanup("Skipped deleting object " + path + ": " + err.Error())
		}
	}

	result := db.Unscoped().Where("id IN ?", ids).Delete(&models.MarketingImage{})
	if result.Error != nil {
		logCleanup("Error deleting expired marketing image rows: " + result.Error.Error())
		return 0, result.Error
	}

	logCleanup("Purged expired marketing images")
	return result.RowsAffected, nil
}

// StartCleanupScheduler runs the marketing-image purge hourly
func StartCleanupScheduler(db *gorm.DB, store *storage.Client) *cron.Cron {
	c := cron.New()

	c.AddFunc("0 * * * *", func() {
		if _, err := PurgeExpiredMarketingImages(db, store); err != nil {
			logCleanup("Scheduled purge failed: " + err.Error())
		}
	})

	c.Start()
	logCleanup("Cleanup scheduler started - runs hourly")
	return c
}
