package dto

import "github.com/aquamate-app/aquamate-backend/internal/models"

type CreateAquariumRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Size        string   `json:"size"`
	Shape       string   `json:"shape"`
	Temperature *float64 `json:"temperature"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	IsPlanted   bool     `json:"isPlanted"`
}

type AquariumListResponse struct {
	Success bool              `json:"success"`
	Data    []models.Aquarium `json:"data"`
}

type AquariumResponse struct {
	Success bool            `json:"success"`
	Data    models.Aquarium `json:"data"`
}
