package handlers

import (
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/service"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	s service.NotificationService
}

func NewNotificationHandler(service service.NotificationService) *NotificationHandler {
	return &NotificationHandler{s: service}
}

func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	userID := GetUserID(c)

	notifications, err := h.s.List(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list notifications",
		})
	}

	return c.Status(fiber.StatusOK).JSON(notifications)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID := GetUserID(c)
	notificationID := c.QueryInt("id", 0)

	if err := h.s.MarkRead(c.Context(), userID, int64(notificationID)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to mark notification read",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
