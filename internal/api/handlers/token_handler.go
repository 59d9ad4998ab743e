package handlers

import (
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/service"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type TokenHandler struct {
	s service.TokenService
}

func NewTokenHandler(service service.TokenService) *TokenHandler {
	return &TokenHandler{s: service}
}

func (h *TokenHandler) SaveToken(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var tu transfer.TokenUpsert
	if err := c.BodyParser(&tu); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	if err := h.s.Save(c.Context(), userID, &tu); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Token saved successfully",
	})
}

func (h *TokenHandler) ListTokens(c *fiber.Ctx) error {
	userID := GetUserID(c)

	tokens, err := h.s.List(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list tokens",
		})
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *TokenHandler) RemoveToken(c *fiber.Ctx) error {
	userID := GetUserID(c)
	tokenID := c.QueryInt("id", 0)

	if err := h.s.Remove(c.Context(), userID, int64(tokenID)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to remove token",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
