package services

import (
	"fmt"

	"github.com/aquamate-app/aquamate-backend/internal/dto"
	"github.com/aquamate-app/aquamate-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AquariumService struct {
	db *gorm.DB
}

func NewAquariumService(db *gorm.DB) *AquariumService {
	return &AquariumService{db: db}
}

func (s *AquariumService) Create(userID uuid.UUID, req *dto.CreateAquariumRequest) (*models.Aquarium, error) {
	var problems []string
	if req.Name == "" {
		problems = append(problems, "name is required")
	}
	if req.Type == "" {
		problems = append(problems, "type is required")
	}
	if req.Size == "" {
		problems = append(problems, "size is required")
	}
	if req.Shape == "" {
		problems = append(problems, "shape is required")
	}
	if req.Temperature == nil {
		problems = append(problems, "temperature is required")
	}
	if req.Location == "" {
		problems = append(problems, "location is required")
	}
	if len(problems) > 0 {
		return nil, validationError(problems)
	}

	aquarium := models.Aquarium{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		Type:        req.Type,
		Size:        req.Size,
		Shape:       req.Shape,
		Temperature: *req.Temperature,
		Location:    req.Location,
		Description: req.Description,
		IsPlanted:   req.IsPlanted,
	}

	if err := s.db.Create(&aquarium).Error; err != nil {
		return nil, fmt.Errorf("failed to create aquarium: %w", err)
	}
	return &aquarium, nil
}

// List returns the caller's aquariums, newest first.
func (s *AquariumService) List(userID uuid.UUID) ([]models.Aquarium, error) {
	aquariums := make([]models.Aquarium, 0)
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&aquariums).Error; err != nil {
		return nil, fmt.Errorf("failed to list aquariums: %w", err)
	}
	return aquariums, nil
}
