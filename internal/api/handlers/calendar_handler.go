package handlers

import (
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/queue"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/service"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

type CalendarHandler struct {
	s           service.CalendarService
	AsynqClient *asynq.Client
}

func NewCalendarHandler(service service.CalendarService, asynqClient *asynq.Client) *CalendarHandler {
	return &CalendarHandler{s: service, AsynqClient: asynqClient}
}

func (h *CalendarHandler) CreateEvent(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var ec transfer.EventCreation
	if err := c.BodyParser(&ec); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	eventID, delay, err := h.s.CreateEvent(c.Context(), userID, &ec)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if ec.AutoPost && ec.Status == models.EventStatusScheduled {
		err = queue.EnqueueDispatch(h.AsynqClient, queue.DispatchEventPayload{EventID: eventID}, delay)
		if err != nil {
			slog.Info(err.Error())
			// the hourly sweep will still pick the event up
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":      eventID,
		"message": "Event scheduled successfully",
	})
}

func (h *CalendarHandler) UpdateEvent(c *fiber.Ctx) error {
	userID := GetUserID(c)
	eventID := c.QueryInt("id", 0)

	var ec transfer.EventCreation
	if err := c.BodyParser(&ec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	delay, enqueue, err := h.s.UpdateEvent(c.Context(), userID, int64(eventID), &ec)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if enqueue {
		if err := queue.EnqueueDispatch(h.AsynqClient, queue.DispatchEventPayload{EventID: int64(eventID)}, delay); err != nil {
			slog.Info(err.Error())
		}
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *CalendarHandler) ListEvents(c *fiber.Ctx) error {
	userID := GetUserID(c)
	eventID := c.QueryInt("id", 0)

	if eventID != 0 {
		event, err := h.s.EventInfo(c.Context(), int64(eventID), userID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unable to get event",
			})
		}
		return c.Status(fiber.StatusOK).JSON(event)
	}

	events, err := h.s.List(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list events",
		})
	}

	return c.Status(fiber.StatusOK).JSON(events)
}

func (h *CalendarHandler) RemoveEvent(c *fiber.Ctx) error {
	userID := GetUserID(c)
	eventID := c.QueryInt("id", 0)

	if err := h.s.Remove(c.Context(), userID, int64(eventID)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to remove event",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
