package models

import "gorm.io/gorm"

// Todo represents a single item on a member's to-do list
type Todo struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Done      bool   `json:"done" gorm:"default:false"`
	Position  int    `json:"position" gorm:"default:0"`
	IsDeleted bool   `gorm:"default:false"`
}
