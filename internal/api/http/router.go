package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brightpath-edu/counseling-scheduler/internal/api/http/handlers"
	"github.com/brightpath-edu/counseling-scheduler/internal/auth"
	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Appointments   *handlers.AppointmentsHandler
	Counselors     *handlers.CounselorsHandler
	Analytics      *handlers.AnalyticsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Role guards here mirror the dashboard's
// advisory client-side checks; the server is the enforcing side.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	// identity-provider style session endpoints
	app.Get("/.auth/me", cfg.Auth.SessionInfo)
	app.Get("/.auth/login/:provider", cfg.Auth.ProviderLogin)
	app.Get("/.auth/logout", cfg.Auth.ProviderLogout)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/appointments", auth.RequireAuthenticated(), cfg.Appointments.List)
	protected.Post("/appointments", auth.RequireRole(domain.RoleStudent), cfg.Appointments.Create)
	protected.Patch("/appointments/:id/status", auth.RequireRole(domain.RoleCounselor, domain.RoleAdmin), cfg.Appointments.UpdateStatus)
	protected.Get("/counselors", auth.RequireAuthenticated(), cfg.Counselors.List)
	protected.Get("/analytics", auth.RequireRole(domain.RoleAdmin), cfg.Analytics.Report)
}
