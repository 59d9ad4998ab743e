package handlers

import (
	"log/slog"

	job "github.com/adamn1225/nextnoetics-gorm-sub000/internal/jobs"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/service"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	us       service.UserService
	os       service.OrganizationService
	is       service.IntakeService
	cs       service.CalendarService
	dispatch *job.DispatchJob
}

func NewAdminHandler(
	us service.UserService,
	os service.OrganizationService,
	is service.IntakeService,
	cs service.CalendarService,
	dispatch *job.DispatchJob) *AdminHandler {
	return &AdminHandler{us: us, os: os, is: is, cs: cs, dispatch: dispatch}
}

func (h *AdminHandler) ListClients(c *fiber.Ctx) error {
	clients, err := h.us.ListClients(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list clients",
		})
	}

	return c.Status(fiber.StatusOK).JSON(clients)
}

func (h *AdminHandler) ListOrganizations(c *fiber.Ctx) error {
	orgs, err := h.os.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list organizations",
		})
	}

	return c.Status(fiber.StatusOK).JSON(orgs)
}

func (h *AdminHandler) ListIntakes(c *fiber.Ctx) error {
	intakes, err := h.is.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list intakes",
		})
	}

	return c.Status(fiber.StatusOK).JSON(intakes)
}

func (h *AdminHandler) ListOrgCalendar(c *fiber.Ctx) error {
	orgID := c.QueryInt("org_id", 0)

	events, err := h.cs.ListForOrg(c.Context(), int64(orgID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list events",
		})
	}

	return c.Status(fiber.StatusOK).JSON(events)
}

// DispatchDuePosts runs one dispatcher sweep on demand. Per-event failures
// are reported inside the summary; only a failed eligibility query is a
// server error.
func (h *AdminHandler) DispatchDuePosts(c *fiber.Ctx) error {
	summary, err := h.dispatch.DispatchDuePosts(c.Context())
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to query due posts",
		})
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}
