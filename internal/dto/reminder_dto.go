package dto

import (
	"github.com/aquamate-app/aquamate-backend/internal/models"
	"github.com/google/uuid"
)

type CreateReminderRequest struct {
	TankName    string `json:"tankName"`
	Type        string `json:"type"`
	DueDateTime string `json:"dueDateTime"`
}

type ReminderResponse struct {
	Success bool            `json:"success"`
	Data    models.Reminder `json:"data"`
}

type ReminderListResponse struct {
	Success bool              `json:"success"`
	Data    []models.Reminder `json:"data"`
}

type DeletedReminderResponse struct {
	Success bool `json:"success"`
	Data    struct {
		ID uuid.UUID `json:"id"`
	} `json:"data"`
}
