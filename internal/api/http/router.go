package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/internlink/internal/api/http/handlers"
	"github.com/spec-kit/internlink/internal/auth"
	"github.com/spec-kit/internlink/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Candidate      *handlers.CandidateHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)

	candidate := app.Group("/candidate", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleCandidate))
	candidate.Get("/profile", cfg.Candidate.GetProfile)
	candidate.Post("/profile", cfg.Candidate.SaveProfile)
}
