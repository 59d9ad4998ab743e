package handlers

import (
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/service"
	"github.com/gofiber/fiber/v2"
)

type OrganizationHandler struct {
	s service.OrganizationService
}

func NewOrganizationHandler(service service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{s: service}
}

func (h *OrganizationHandler) CreateOrganization(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var body struct {
		Name    string `json:"name"`
		Website string `json:"website"`
	}
	if err := c.BodyParser(&body); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	orgID, err := h.s.Create(c.Context(), userID, body.Name, body.Website)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":      orgID,
		"message": "Organization created successfully",
	})
}

func (h *OrganizationHandler) ListOrganizations(c *fiber.Ctx) error {
	userID := GetUserID(c)

	orgs, err := h.s.ListForUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list organizations",
		})
	}

	return c.Status(fiber.StatusOK).JSON(orgs)
}

func (h *OrganizationHandler) AddMember(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	orgID := c.QueryInt("org_id", 0)

	var body struct {
		UserID int64  `json:"user_id"`
		Role   string `json:"role"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	if err := h.s.AddMember(c.Context(), actorID, int64(orgID), body.UserID, body.Role); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *OrganizationHandler) RemoveMember(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	orgID := c.QueryInt("org_id", 0)
	userID := c.QueryInt("user_id", 0)

	if err := h.s.RemoveMember(c.Context(), actorID, int64(orgID), int64(userID)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *OrganizationHandler) ListMembers(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	orgID := c.QueryInt("org_id", 0)

	members, err := h.s.ListMembers(c.Context(), actorID, int64(orgID))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list members",
		})
	}

	return c.Status(fiber.StatusOK).JSON(members)
}
