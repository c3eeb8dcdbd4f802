package handlers

import (
	"errors"
	"mime"
	"path/filepath"

	"github.com/aquamate-app/aquamate-backend/internal/dto"
	"github.com/aquamate-app/aquamate-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	store storage.ObjectStorage
}

func NewUploadHandler(store storage.ObjectStorage) *UploadHandler {
	return &UploadHandler{store: store}
}

// Serve streams an uploaded file back to the client. Going through the
// storage backend keeps /uploads working whether files live on disk or in a
// bucket.
func (h *UploadHandler) Serve(c *fiber.Ctx) error {
	name := c.Params("filename")

	obj, err := h.store.Open(c.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "File not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to read file",
		})
	}

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Set(fiber.HeaderContentType, contentType)

	return c.SendStream(obj)
}
