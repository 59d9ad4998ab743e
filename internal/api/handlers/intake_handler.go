package handlers

import (
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/service"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type IntakeHandler struct {
	s service.IntakeService
}

func NewIntakeHandler(service service.IntakeService) *IntakeHandler {
	return &IntakeHandler{s: service}
}

// SubmitIntake is public: prospective clients submit project plans without
// an account.
func (h *IntakeHandler) SubmitIntake(c *fiber.Ctx) error {
	var is transfer.IntakeSubmission
	if err := c.BodyParser(&is); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	reference, err := h.s.Submit(c.Context(), &is)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"reference": reference,
		"message":   "Intake submitted successfully",
	})
}
