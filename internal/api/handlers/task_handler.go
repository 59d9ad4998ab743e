package handlers

import (
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/service"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type TaskHandler struct {
	s service.TaskService
}

func NewTaskHandler(service service.TaskService) *TaskHandler {
	return &TaskHandler{s: service}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var tc transfer.TaskCreation
	if err := c.BodyParser(&tc); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	taskID, err := h.s.Create(c.Context(), userID, &tc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":      taskID,
		"message": "Task created successfully",
	})
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	userID := GetUserID(c)
	orgID := c.QueryInt("org_id", 0)

	tasks, err := h.s.ListForOrg(c.Context(), userID, int64(orgID))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list tasks",
		})
	}

	return c.Status(fiber.StatusOK).JSON(tasks)
}

func (h *TaskHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	userID := GetUserID(c)
	taskID := c.QueryInt("id", 0)

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	if err := h.s.UpdateStatus(c.Context(), userID, int64(taskID), body.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *TaskHandler) RemoveTask(c *fiber.Ctx) error {
	userID := GetUserID(c)
	taskID := c.QueryInt("id", 0)

	if err := h.s.Remove(c.Context(), userID, int64(taskID)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to remove task",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
