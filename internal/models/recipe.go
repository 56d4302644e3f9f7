package models

import "time"

// Recipe represents a recipe owned by a user. Records are immutable once
// created; there are no update or delete operations.
type Recipe struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Title             string    `gorm:"type:varchar(80);not null" json:"title"`
	Instructions      string    `gorm:"type:varchar(50);not null" json:"instructions"`
	MinutesToComplete int       `gorm:"not null" json:"minutes_to_complete"`
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	User              User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
