package handlers

import (
	"errors"
	"log/slog"

	"github.com/aquamate-app/aquamate-backend/internal/dto"
	"github.com/aquamate-app/aquamate-backend/internal/middleware"
	"github.com/aquamate-app/aquamate-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReminderHandler struct {
	reminderService *services.ReminderService
}

func NewReminderHandler(reminderService *services.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

func (h *ReminderHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	reminder, err := h.reminderService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("reminder create failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save reminder",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ReminderResponse{
		Success: true, Data: *reminder,
	})
}

func (h *ReminderHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	reminders, err := h.reminderService.List(userID)
	if err != nil {
		slog.Error("reminder list failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reminders.",
		})
	}

	return c.JSON(dto.ReminderListResponse{Success: true, Data: reminders})
}

func (h *ReminderHandler) Complete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	reminderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Reminder not found.",
		})
	}

	reminder, err := h.reminderService.Complete(userID, reminderID)
	if err != nil {
		return h.reminderError(c, err, userID.String())
	}

	return c.JSON(dto.ReminderResponse{Success: true, Data: *reminder})
}

func (h *ReminderHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	reminderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Reminder not found.",
		})
	}

	if err := h.reminderService.Delete(userID, reminderID); err != nil {
		return h.reminderError(c, err, userID.String())
	}

	resp := dto.DeletedReminderResponse{Success: true}
	resp.Data.ID = reminderID
	return c.JSON(resp)
}

func (h *ReminderHandler) reminderError(c *fiber.Ctx, err error, userID string) error {
	if errors.Is(err, services.ErrReminderNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Reminder not found.",
		})
	}
	if errors.Is(err, services.ErrNotOwner) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Not authorized to modify this reminder.",
		})
	}
	slog.Error("reminder operation failed", "error", err, "user_id", userID)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Server error",
	})
}
