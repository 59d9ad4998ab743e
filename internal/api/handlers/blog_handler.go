package handlers

import (
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/service"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type BlogHandler struct {
	s service.BlogService
}

func NewBlogHandler(service service.BlogService) *BlogHandler {
	return &BlogHandler{s: service}
}

func (h *BlogHandler) CreatePost(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var bc transfer.BlogPostCreation
	if err := c.BodyParser(&bc); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	postID, err := h.s.Create(c.Context(), userID, &bc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":      postID,
		"message": "Post created successfully",
	})
}

func (h *BlogHandler) UpdatePost(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID := c.QueryInt("id", 0)

	var bc transfer.BlogPostCreation
	if err := c.BodyParser(&bc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	if err := h.s.Update(c.Context(), userID, int64(postID), &bc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *BlogHandler) ListPosts(c *fiber.Ctx) error {
	userID := GetUserID(c)
	orgID := c.QueryInt("org_id", 0)

	posts, err := h.s.ListForOrg(c.Context(), userID, int64(orgID))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list posts",
		})
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetPublishedPost serves the public blog page. No session required.
func (h *BlogHandler) GetPublishedPost(c *fiber.Ctx) error {
	slug := c.Params("slug")

	post, err := h.s.GetPublishedBySlug(c.Context(), slug)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *BlogHandler) RemovePost(c *fiber.Ctx) error {
	userID := GetUserID(c)
	postID := c.QueryInt("id", 0)

	if err := h.s.Remove(c.Context(), userID, int64(postID)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to remove post",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
