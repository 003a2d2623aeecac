package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/tubetools/tubetools-go/internal/config"
	"github.com/tubetools/tubetools-go/internal/db"
	"github.com/tubetools/tubetools-go/internal/handler"
	"github.com/tubetools/tubetools-go/internal/middleware"
	"github.com/tubetools/tubetools-go/internal/repository"
	"github.com/tubetools/tubetools-go/internal/router"
	"github.com/tubetools/tubetools-go/internal/service"
	"github.com/tubetools/tubetools-go/internal/youtube"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "tubetools-api")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	quotaSvc := service.NewQuotaService(repository.NewQuotaRepo(pool), cache, cfg.DailyQuota)

	fetcher := youtube.NewFetcher(cfg.FetchTimeout, cfg.UserAgent)
	toolSvc := service.NewToolService(fetcher)

	var apiClient *youtube.APIClient
	if cfg.YouTubeAPIKey != "" {
		apiClient, err = youtube.NewAPIClient(ctx, cfg.YouTubeAPIKey)
		if err != nil {
			log.Fatalf("failed to create YouTube API client: %v", err)
		}
	} else {
		log.Println("YOUTUBE_API_KEY not set; /api/channel-data disabled")
	}
	dataSvc := service.NewChannelDataService(apiClient, quotaSvc)

	handler.InitMetrics(pool)

	app := fiber.New(fiber.Config{
		AppName:      "TubeTools API",
		ServerHeader: "TubeTools",
	})

	router.Setup(app, &router.Handlers{
		ChannelID:    handler.NewChannelIDHandler(toolSvc),
		Monetization: handler.NewMonetizationHandler(toolSvc),
		Tags:         handler.NewTagsHandler(toolSvc),
		Stats:        handler.NewStatsHandler(toolSvc),
		ChannelData:  handler.NewChannelDataHandler(dataSvc),
		Revenue:      handler.NewRevenueHandler(),
		Thumbnails:   handler.NewThumbnailsHandler(),
		Usage:        handler.NewUsageHandler(quotaSvc),
		Health:       handler.NewHealthHandler(pool, cache.Client()),
	}, cfg.CORSOrigins)

	log.Printf("TubeTools backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
