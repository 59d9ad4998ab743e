package handlers

import (
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/service"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	s service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{s: service}
}

func (h *AnalyticsHandler) GetSettings(c *fiber.Ctx) error {
	userID := GetUserID(c)
	orgID := c.QueryInt("org_id", 0)

	info, err := h.s.GetInfo(c.Context(), userID, int64(orgID))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to get analytics settings",
		})
	}

	return c.Status(fiber.StatusOK).JSON(info)
}

func (h *AnalyticsHandler) UpdateSettings(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var au transfer.AnalyticsUpdate
	if err := c.BodyParser(&au); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	if err := h.s.Update(c.Context(), userID, &au); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Analytics settings updated",
	})
}
