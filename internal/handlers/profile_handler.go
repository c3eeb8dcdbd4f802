package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/aquamate-app/aquamate-backend/internal/config"
	"github.com/aquamate-app/aquamate-backend/internal/dto"
	"github.com/aquamate-app/aquamate-backend/internal/middleware"
	"github.com/aquamate-app/aquamate-backend/internal/services"
	"github.com/aquamate-app/aquamate-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
)

const pictureField = "profilePicture"

type ProfileHandler struct {
	profileService *services.ProfileService
	store          storage.ObjectStorage
	cfg            *config.Config
}

func NewProfileHandler(profileService *services.ProfileService, store storage.ObjectStorage, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, store: store, cfg: cfg}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	user, err := h.profileService.Get(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found.",
			})
		}
		slog.Error("profile fetch failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch profile",
		})
	}

	return c.JSON(dto.NewUserResponse(user))
}

// Update handles PUT /api/profile/update. The body may be JSON or multipart;
// the optional image travels in the "profilePicture" multipart field and is
// validated and written to storage before the record is touched.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	// BodyParser understands both JSON and multipart form fields here.
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	var pictureURL, pictureName string
	if file, ferr := c.FormFile(pictureField); ferr == nil {
		if file.Size > h.cfg.MaxUploadSize {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Image size must be less than 5MB",
			})
		}

		contentType := file.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Only image files are allowed!",
			})
		}

		ext := filepath.Ext(file.Filename)
		if ext == "" {
			ext = ".jpg"
		}
		pictureName = fmt.Sprintf("%s-%d%s", pictureField, time.Now().UnixNano(), ext)

		src, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to read uploaded file",
			})
		}
		defer src.Close()

		if err := h.store.Save(c.Context(), pictureName, src, file.Size, contentType); err != nil {
			slog.Error("profile picture write failed", "error", err, "user_id", userID.String())
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to save image",
			})
		}
		pictureURL = "/uploads/" + pictureName
	}

	user, err := h.profileService.Update(userID, req.FullName, req.DOB, pictureURL)
	if err != nil {
		// Don't leave an orphan object behind a failed record update.
		if pictureName != "" {
			h.store.Remove(c.Context(), pictureName)
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found.",
			})
		}
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("profile update failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Server error during profile update.",
		})
	}

	return c.JSON(dto.NewUserResponse(user))
}
