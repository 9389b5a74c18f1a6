package course

import (
	"time"

	"gorm.io/gorm"
)

// CertificateLayout holds the per-course pixel coordinates used to draw the
// learner's name and the issue date onto the certificate template. One row per
// course, created by vision-model inference or manual admin edit.
type CertificateLayout struct {
	gorm.Model
	CourseID        uint   `json:"course_id" gorm:"uniqueIndex;not null"`
	NameX           int    `json:"name_x"`
	NameY           int    `json:"name_y"`
	NameMaxWidth    int    `json:"name_max_width"`
	NameFontSize    int    `json:"name_font_size"`
	NameMinFontSize int    `json:"name_min_font_size"`
	DateX           int    `json:"date_x"`
	DateY           int    `json:"date_y"`
	NameColor       string `json:"name_color"`
	DateColor       string `json:"date_color"`
	TemplatePath    string `json:"template_path"`
	TemplateWidth   int    `json:"template_width"`
	TemplateHeight  int    `json:"template_height"`
}

// Certification is the durable record that a learner has earned a certificate
// for a course. Unique per (user, course); regeneration upserts the row.
type Certification struct {
	gorm.Model
	UserID          uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_certifications_user_course"`
	CourseID        uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_certifications_user_course"`
	CertificateName string    `json:"certificate_name"`
	CertificateURL  string    `json:"certificate_url"`
	IssuedAt        time.Time `json:"issued_at"`
	IsDeleted       bool      `gorm:"default:false"`
}

// CertificationPhoto is evidence a learner uploads toward certification
// eligibility. Zero or more per (user, course); deleted on admin reset.
type CertificationPhoto struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"index;not null"`
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	FileURL     string `json:"file_url"`
	StoragePath string `json:"storage_path"`
}
