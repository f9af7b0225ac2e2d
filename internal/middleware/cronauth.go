package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/asddataking/shittter/internal/config"
	"github.com/asddataking/shittter/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// CronSecretRequired guards operational endpoints (job draining, seeding)
// behind a shared secret. The secret is accepted as an X-Cron-Secret header,
// a bearer token, or a ?secret= query parameter. The response is the same
// 401 regardless of which check failed.
func CronSecretRequired(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.CronSecret == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		candidate := c.Get("X-Cron-Secret")
		if candidate == "" {
			if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				candidate = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if candidate == "" {
			candidate = c.Query("secret")
		}

		if subtle.ConstantTimeCompare([]byte(candidate), []byte(cfg.CronSecret)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		return c.Next()
	}
}
