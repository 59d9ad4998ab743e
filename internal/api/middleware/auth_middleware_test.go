package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	config "github.com/adamn1225/nextnoetics-gorm-sub000/configs"
	"github.com/adamn1225/nextnoetics-gorm-sub000/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T, cfg config.Config) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(NewAuthMiddleware(cfg).AuthMiddleware())
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	return app
}

func TestAuthMiddlewareMissingCookie(t *testing.T) {
	cfg := config.Config{SecretKey: "secret", CookieName: "nextnoetics_session"}
	app := testApp(t, cfg)

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	cfg := config.Config{SecretKey: "secret", CookieName: "nextnoetics_session"}
	app := testApp(t, cfg)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: "garbage"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	cfg := config.Config{SecretKey: "secret", CookieName: "nextnoetics_session"}
	app := testApp(t, cfg)

	token, err := utils.GenerateToken(cfg.SecretKey, "42", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := make([]byte, 2)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "42", string(body[:n]))
}
