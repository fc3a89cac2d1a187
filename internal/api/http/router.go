package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/api/http/handlers"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Patients       *handlers.PatientsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	patients := api.Group("/patients", cfg.AuthMiddleware.Handle)
	patients.Get("/", cfg.Patients.List)
	patients.Get("/:id", cfg.Patients.Get)

	admin := auth.RequireAdmin()
	patients.Post("/", admin, cfg.Patients.Create)
	patients.Put("/:id", admin, cfg.Patients.Update)
	patients.Patch("/:id", admin, cfg.Patients.Update)
	patients.Delete("/:id", admin, cfg.Patients.Delete)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "route not found")
	})
}
