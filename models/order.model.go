package models

import (
	"time"

	"gorm.io/gorm"
)

// Order statuses stored in the database. COMPLETED is never stored; it is a
// display-only status derived from SHIPPED plus elapsed time.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusCompleted  = "COMPLETED"
)

// CompletedAfter is how long a shipped order takes to display as completed.
const CompletedAfter = 7 * 24 * time.Hour

// Order represents a merchandise order placed by a member
type Order struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"index;not null"`
	Items          string    `json:"items"`
	Amount         float64   `json:"amount"`
	Status         string    `json:"status" gorm:"default:'PENDING'"` // PENDING, PROCESSING, SHIPPED
	TrackingNumber string    `json:"tracking_number"`
	TrackingSeen   bool      `json:"tracking_seen" gorm:"default:false"`
	OrderDate      time.Time `json:"order_date"`
	IsDeleted      bool      `gorm:"default:false"`
}

// DisplayStatus returns the status shown to the member. A shipped order whose
// order date is 7 or more days in the past displays as COMPLETED; the stored
// status column is untouched.
func (o *Order) DisplayStatus(now time.Time) string {
	if o.Status == OrderStatusShipped && !o.OrderDate.IsZero() && now.Sub(o.OrderDate) >= CompletedAfter {
		return OrderStatusCompleted
	}
	return o.Status
}
