package models

import "gorm.io/gorm"

// MarketingImage is a short-lived promotional image. Rows older than 24 hours
// are purged together with their storage objects by the cleanup job.
type MarketingImage struct {
	gorm.Model
	Title       string `json:"title"`
	FileURL     string `json:"file_url"`
	StoragePath string `json:"storage_path"`
}
