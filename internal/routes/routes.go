package routes

import (
	"time"

	"github.com/aquamate-app/aquamate-backend/internal/config"
	"github.com/aquamate-app/aquamate-backend/internal/handlers"
	"github.com/aquamate-app/aquamate-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	aquariumHandler *handlers.AquariumHandler,
	reminderHandler *handlers.ReminderHandler,
	healthHandler *handlers.HealthHandler,
	uploadHandler *handlers.UploadHandler,
) {
	// Deployment liveness probe.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("AquaMate API is running...")
	})

	// Uploaded profile pictures, public by filename.
	app.Get("/uploads/:filename", uploadHandler.Serve)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Everything below requires a valid bearer token.
	api.Get("/profile", middleware.JWTProtected(cfg), profileHandler.Get)
	api.Put("/profile/update", middleware.JWTProtected(cfg), profileHandler.Update)

	api.Post("/aquariums", middleware.JWTProtected(cfg), aquariumHandler.Create)
	api.Get("/aquariums", middleware.JWTProtected(cfg), aquariumHandler.List)

	api.Post("/reminders", middleware.JWTProtected(cfg), reminderHandler.Create)
	api.Get("/reminders", middleware.JWTProtected(cfg), reminderHandler.List)
	api.Patch("/reminders/:id/complete", middleware.JWTProtected(cfg), reminderHandler.Complete)
	api.Delete("/reminders/:id", middleware.JWTProtected(cfg), reminderHandler.Delete)
}
