package middleware

import (
	"strconv"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/service"
	"github.com/gofiber/fiber/v2"
)

type AdminMiddleware struct {
	us service.UserService
}

func NewAdminMiddleware(us service.UserService) *AdminMiddleware {
	return &AdminMiddleware{us: us}
}

// AdminMiddleware assumes AuthMiddleware already ran and set user_id.
func (m *AdminMiddleware) AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := strconv.ParseInt(c.Locals("user_id").(string), 10, 64)

		isAdmin, err := m.us.IsAdmin(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unable to verify account",
			})
		}
		if !isAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}
		return c.Next()
	}
}
