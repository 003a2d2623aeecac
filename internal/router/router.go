package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/tubetools/tubetools-go/internal/handler"
	"github.com/tubetools/tubetools-go/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	ChannelID    *handler.ChannelIDHandler
	Monetization *handler.MonetizationHandler
	Tags         *handler.TagsHandler
	Stats        *handler.StatsHandler
	ChannelData  *handler.ChannelDataHandler
	Revenue      *handler.RevenueHandler
	Thumbnails   *handler.ThumbnailsHandler
	Usage        *handler.UsageHandler
	Health       *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestID())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health and metrics (no rate limiting)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api")

	// Scraping tools: every request costs one upstream fetch
	scrapeLimit := middleware.NewScrapeRateLimiter().Handler()
	api.Post("/find-channel-id", h.ChannelID.Find, scrapeLimit)
	api.Post("/check-monetization", h.Monetization.Check, scrapeLimit)
	api.Post("/extract-tags", h.Tags.Extract, scrapeLimit)
	api.Post("/channel-stats", h.Stats.Fetch, scrapeLimit)

	// Quota-gated official API lookup
	api.Post("/channel-data", h.ChannelData.Fetch, scrapeLimit)

	// Pure computation
	computeLimit := middleware.NewComputeRateLimiter().Handler()
	api.Post("/revenue/estimate", h.Revenue.Estimate, computeLimit)
	api.Post("/thumbnails", h.Thumbnails.List, computeLimit)

	// Quota introspection
	api.Get("/usage", h.Usage.Get)
}
