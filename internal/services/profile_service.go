package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/aquamate-app/aquamate-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) Get(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// Update applies the provided fields to the user's own record. Empty strings
// mean "leave unchanged", matching the mobile client's partial form submits.
func (s *ProfileService) Update(userID uuid.UUID, fullName, dob, pictureURL string) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if fullName != "" {
		user.FullName = fullName
	}
	if dob != "" {
		parsed, err := time.Parse("2006-01-02", dob)
		if err != nil {
			return nil, validationError([]string{"date of birth must be YYYY-MM-DD"})
		}
		user.DOB = datatypes.Date(parsed)
	}
	if pictureURL != "" {
		user.ProfilePicture = pictureURL
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}
