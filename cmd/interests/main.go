package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/edu-analytics/courserec/internal/analytics"
	"github.com/edu-analytics/courserec/internal/api"
	"github.com/edu-analytics/courserec/internal/api/handlers"
	"github.com/edu-analytics/courserec/internal/app"
	"github.com/edu-analytics/courserec/internal/config"
	"github.com/edu-analytics/courserec/internal/health"
	"github.com/edu-analytics/courserec/internal/interests"
	"github.com/edu-analytics/courserec/internal/models"
	"github.com/edu-analytics/courserec/internal/requestlog"
	"github.com/edu-analytics/courserec/internal/services"
	"github.com/edu-analytics/courserec/pkg/utils"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting interest recommendation service...")

	cfg, err := config.Load(config.ServiceInterests)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize storage")
	}
	defer storage.Close()

	entries := interests.DefaultEntries()
	if len(cfg.Interests.Catalog) > 0 {
		entries = make([]interests.Entry, len(cfg.Interests.Catalog))
		for i, e := range cfg.Interests.Catalog {
			entries[i] = interests.Entry{Keyword: e.Keyword, Titles: e.Titles}
		}
	}
	cat := interests.NewCatalog(entries)
	logger.WithField("keywords", cat.Keywords()).Info("Interest catalog loaded")

	recommender := services.NewInterestRecommender(cat, nil, logger)
	recorder := analytics.NewRecorder(
		requestlog.New[models.InterestRecommendation](cfg.RequestLog.Capacity),
		analytics.InterestEvent,
		logger,
		storage.Sinks(cfg)...,
	)

	opts, cleanup := app.RouterOptions(cfg, logger)
	defer cleanup()

	common := handlers.NewCommonHandler(api.InterestServiceName, api.InterestEndpoints(), health.ForManager(storage.Manager, logger), logger)
	router := api.NewInterestRouter(opts, common, handlers.NewInterestHandler(recommender, recorder, opts.Metrics, logger))

	if err := app.Serve(ctx, ":"+cfg.Server.Port, router, logger); err != nil {
		logger.WithError(err).Error("HTTP server stopped with error")
	}

	recorder.Wait()
	logger.Info("Interest recommendation service stopped")
}
