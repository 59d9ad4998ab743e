package handlers

import (
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/service"
	"github.com/gofiber/fiber/v2"
)

type FileHandler struct {
	s service.FileService
}

func NewFileHandler(service service.FileService) *FileHandler {
	return &FileHandler{s: service}
}

func (h *FileHandler) UploadFile(c *fiber.Ctx) error {
	userID := GetUserID(c)

	fh, err := c.FormFile("file")
	if err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	var orgID *int64
	if v := c.QueryInt("org_id", 0); v != 0 {
		id := int64(v)
		orgID = &id
	}

	asset, err := h.s.Upload(c.Context(), userID, orgID, fh)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(asset)
}

func (h *FileHandler) ListFiles(c *fiber.Ctx) error {
	userID := GetUserID(c)
	orgID := c.QueryInt("org_id", 0)

	if orgID != 0 {
		files, err := h.s.ListForOrg(c.Context(), int64(orgID))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unable to list files",
			})
		}
		return c.Status(fiber.StatusOK).JSON(files)
	}

	files, err := h.s.List(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list files",
		})
	}

	return c.Status(fiber.StatusOK).JSON(files)
}

func (h *FileHandler) RemoveFile(c *fiber.Ctx) error {
	userID := GetUserID(c)
	fileID := c.QueryInt("id", 0)

	if err := h.s.Remove(c.Context(), userID, int64(fileID)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to remove file",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
