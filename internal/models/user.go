package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DefaultProfilePicture is served until the user uploads their own.
const DefaultProfilePicture = "https://i.imgur.com/G5g2mJc.png"

var Genders = []string{"Male", "Female", "Others"}

// User holds the account record. The password column stores a bcrypt hash and
// is excluded from every JSON projection.
type User struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FullName       string         `gorm:"size:120;not null" json:"fullName"`
	Email          string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password       string         `gorm:"not null" json:"-"`
	Gender         string         `gorm:"size:10;default:'Male'" json:"gender"`
	DOB            datatypes.Date `gorm:"not null" json:"dob"`
	ProfilePicture string         `gorm:"type:text" json:"profilePicture"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func ValidGender(g string) bool {
	for _, v := range Genders {
		if v == g {
			return true
		}
	}
	return false
}
