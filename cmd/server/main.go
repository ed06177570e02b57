package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"github.com/mlachapelle/creatorlens/internal/config"
	"github.com/mlachapelle/creatorlens/internal/db"
	"github.com/mlachapelle/creatorlens/internal/handler"
	"github.com/mlachapelle/creatorlens/internal/middleware"
	"github.com/mlachapelle/creatorlens/internal/repository"
	"github.com/mlachapelle/creatorlens/internal/router"
	"github.com/mlachapelle/creatorlens/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	middleware.InitLogger(cfg.LogLevel, "creatorlens-api")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	creatorRepo := repository.NewCreatorRepo(pool)
	videoRepo := repository.NewVideoRepo(pool)

	snapshotSvc := service.NewSnapshotService(creatorRepo, videoRepo)
	dashboardSvc := service.NewDashboardService(cache)

	handler.InitMetrics(pool, dashboardSvc)
	dashboardSvc.OnCacheEvent(func(hit bool) {
		if hit {
			handler.Metrics.CacheHits.Inc()
		} else {
			handler.Metrics.CacheMisses.Inc()
		}
	})

	worker := service.NewRefreshWorker(snapshotSvc, dashboardSvc, cfg.RefreshSchedule)
	worker.OnRefresh(handler.ObserveRefresh)
	if err := worker.Start(ctx); err != nil {
		log.Fatalf("initial snapshot refresh failed: %v", err)
	}
	defer worker.Stop()

	app := fiber.New(fiber.Config{
		AppName:      "CreatorLens API",
		ServerHeader: "CreatorLens",
	})

	h := &router.Handlers{
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		Export:    handler.NewExportHandler(dashboardSvc),
		Health:    handler.NewHealthHandler(pool, cache.Client(), dashboardSvc),
	}
	router.Setup(app, h, cfg.CORSOrigins)

	go func() {
		<-ctx.Done()
		log.Println("shutting down")
		_ = app.Shutdown()
	}()

	log.Printf("CreatorLens backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
