package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fsonmez/windpowerlib/internal/config"
	"github.com/fsonmez/windpowerlib/internal/events"
	"github.com/fsonmez/windpowerlib/internal/handlers"
	"github.com/fsonmez/windpowerlib/internal/logging"
	"github.com/fsonmez/windpowerlib/internal/middleware"
	"github.com/fsonmez/windpowerlib/internal/store"
)

// Setup configures all routes and middlewares
func Setup(app *fiber.App, logger *logging.Logger, st store.Store, publisher events.Publisher, cfg config.Config) *handlers.Handler {
	h := handlers.New(logger, st, publisher, cfg)

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-API-Key,X-Request-ID",
	}))
	app.Use(logging.FiberMiddleware(logger))

	// Health check (no auth required)
	app.Get("/health", h.Health)

	// API key authentication middleware
	authMiddleware := middleware.APIKeyAuth(logger, cfg.Auth.APIKeys, cfg.Auth.Enabled)

	// API v1 routes (protected by API key)
	v1 := app.Group("/v1", authMiddleware)

	// Curve Transformation Routes
	v1.Post("/curves/smooth", h.SmoothCurve)
	v1.Post("/curves/wake-losses", h.ApplyWakeLosses)
	v1.Post("/curves/pipeline", h.PipelineCurve)
	v1.Post("/curves/batch/smooth", h.BatchSmooth)

	// Turbine Curve Storage Routes
	v1.Post("/turbines", h.SaveTurbine)
	v1.Get("/turbines", h.ListTurbines)
	v1.Get("/turbines/:name", h.GetTurbine)
	v1.Delete("/turbines/:name", h.DeleteTurbine)
	v1.Get("/turbines/:name/smooth", h.SmoothTurbine)

	// 404 handler for all unmatched routes
	app.Use(h.NotFound)

	return h
}

// New creates a Fiber app wired with the service's error handler and routes
func New(logger *logging.Logger, st store.Store, publisher events.Publisher, cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "windpower-curves",
		ErrorHandler: middleware.ErrorHandler(logger),
	})

	Setup(app, logger, st, publisher, cfg)
	return app
}
