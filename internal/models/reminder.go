package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReminderStatusUpcoming  = "upcoming"
	ReminderStatusCompleted = "completed"
	ReminderStatusMissed    = "missed"
)

var ReminderTypes = []string{"feed", "water-change", "cleaning", "filter-wash"}

// Reminder is a scheduled maintenance entry for one of the owner's tanks.
type Reminder struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	TankName    string    `gorm:"size:120;not null" json:"tankName"`
	Type        string    `gorm:"size:20;not null" json:"type"`
	DueDateTime time.Time `gorm:"not null;index" json:"dueDateTime"`
	Status      string    `gorm:"size:10;default:'upcoming'" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ValidReminderType(t string) bool {
	for _, v := range ReminderTypes {
		if v == t {
			return true
		}
	}
	return false
}
