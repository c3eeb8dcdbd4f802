package handlers

import (
	"errors"
	"log/slog"

	"github.com/aquamate-app/aquamate-backend/internal/dto"
	"github.com/aquamate-app/aquamate-backend/internal/middleware"
	"github.com/aquamate-app/aquamate-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AquariumHandler struct {
	aquariumService *services.AquariumService
}

func NewAquariumHandler(aquariumService *services.AquariumService) *AquariumHandler {
	return &AquariumHandler{aquariumService: aquariumService}
}

func (h *AquariumHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateAquariumRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	aquarium, err := h.aquariumService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("aquarium create failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save aquarium",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AquariumResponse{
		Success: true, Data: *aquarium,
	})
}

func (h *AquariumHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	aquariums, err := h.aquariumService.List(userID)
	if err != nil {
		slog.Error("aquarium list failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch aquariums",
		})
	}

	return c.JSON(dto.AquariumListResponse{Success: true, Data: aquariums})
}
