package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/aquamate-app/aquamate-backend/internal/dto"
	"github.com/aquamate-app/aquamate-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderService struct {
	db *gorm.DB
}

func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{db: db}
}

func (s *ReminderService) Create(userID uuid.UUID, req *dto.CreateReminderRequest) (*models.Reminder, error) {
	var problems []string
	if req.TankName == "" {
		problems = append(problems, "tank name is required")
	}
	if req.Type == "" {
		problems = append(problems, "reminder type is required")
	} else if !models.ValidReminderType(req.Type) {
		problems = append(problems, "reminder type must be one of feed, water-change, cleaning or filter-wash")
	}
	var due time.Time
	if req.DueDateTime == "" {
		problems = append(problems, "due date/time is required")
	} else {
		var err error
		due, err = time.Parse(time.RFC3339, req.DueDateTime)
		if err != nil {
			problems = append(problems, "due date/time must be RFC 3339")
		}
	}
	if len(problems) > 0 {
		return nil, validationError(problems)
	}

	reminder := models.Reminder{
		ID:          uuid.New(),
		UserID:      userID,
		TankName:    req.TankName,
		Type:        req.Type,
		DueDateTime: due,
		Status:      models.ReminderStatusUpcoming,
	}

	if err := s.db.Create(&reminder).Error; err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}
	return &reminder, nil
}

// List returns the caller's reminders sorted by due time ascending.
func (s *ReminderService) List(userID uuid.UUID) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := s.db.Where("user_id = ?", userID).Order("due_date_time ASC").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return reminders, nil
}

// Complete marks one of the caller's reminders as done.
func (s *ReminderService) Complete(userID, reminderID uuid.UUID) (*models.Reminder, error) {
	reminder, err := s.ownedReminder(userID, reminderID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(reminder).Update("status", models.ReminderStatusCompleted).Error; err != nil {
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}
	reminder.Status = models.ReminderStatusCompleted
	return reminder, nil
}

// Delete removes a reminder, refusing if the caller is not its owner.
func (s *ReminderService) Delete(userID, reminderID uuid.UUID) error {
	reminder, err := s.ownedReminder(userID, reminderID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(reminder).Error; err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}

func (s *ReminderService) ownedReminder(userID, reminderID uuid.UUID) (*models.Reminder, error) {
	var reminder models.Reminder
	if err := s.db.First(&reminder, "id = ?", reminderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to load reminder: %w", err)
	}
	if reminder.UserID != userID {
		return nil, ErrNotOwner
	}
	return &reminder, nil
}
