package models

import (
	"time"

	"github.com/google/uuid"
)

// Aquarium is a tank record owned by exactly one user. Records are
// create-and-read only; the mobile app never edits them in place.
type Aquarium struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	Type        string    `gorm:"size:50;not null" json:"type"`
	Size        string    `gorm:"size:50;not null" json:"size"`
	Shape       string    `gorm:"size:50;not null" json:"shape"`
	Temperature float64   `gorm:"not null" json:"temperature"`
	Location    string    `gorm:"size:120;not null" json:"location"`
	Description string    `gorm:"type:text" json:"description"`
	IsPlanted   bool      `gorm:"default:false" json:"isPlanted"`
	CreatedAt   time.Time `json:"createdAt"`
}
