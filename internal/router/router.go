package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/mlachapelle/creatorlens/internal/handler"
	"github.com/mlachapelle/creatorlens/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Dashboard *handler.DashboardHandler
	Export    *handler.ExportHandler
	Health    *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Probes and metrics (before API group, no rate limit)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	dashboardLimit := middleware.NewDashboardRateLimiter().Handler()
	exportLimit := middleware.NewExportRateLimiter().Handler()

	// API routes, all read-only
	api := app.Group("/api", dashboardLimit)

	api.Get("/creators", h.Dashboard.GetCreators)
	api.Get("/creators/:channelId/stats", h.Dashboard.GetChannelStats)
	api.Get("/scores", h.Dashboard.GetScores)
	api.Get("/regression/views-subscribers", h.Dashboard.GetRegression)
	api.Get("/groups/:dimension", h.Dashboard.GetGroups)
	api.Get("/histograms/duration", h.Dashboard.GetDurationHistogram)

	api.Get("/export/scores.csv", h.Export.ExportScores, exportLimit)
}
