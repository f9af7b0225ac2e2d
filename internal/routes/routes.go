package routes

import (
	"time"

	"github.com/asddataking/shittter/internal/config"
	"github.com/asddataking/shittter/internal/handlers"
	"github.com/asddataking/shittter/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	reportHandler *handlers.ReportHandler,
	jobsHandler *handlers.JobsHandler,
	placesHandler *handlers.PlacesHandler,
	seedHandler *handlers.SeedHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP. The domain-level report
	// limiter (per device fingerprint) is enforced separately in the intake
	// service.
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Report intake, fingerprinted per device
	api.Post("/reports", middleware.DeviceFingerprint(cfg), reportHandler.SubmitReport)

	// Read path
	api.Get("/places/nearby", placesHandler.Nearby)
	api.Get("/places/:id", placesHandler.GetPlace)

	// Operational endpoints behind the shared secret
	api.Post("/jobs/run", middleware.CronSecretRequired(cfg), jobsHandler.RunJobs)
	api.Post("/admin/seed", middleware.CronSecretRequired(cfg), seedHandler.Seed)
}
