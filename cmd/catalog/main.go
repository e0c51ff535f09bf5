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
	"github.com/edu-analytics/courserec/internal/catalog"
	"github.com/edu-analytics/courserec/internal/config"
	"github.com/edu-analytics/courserec/internal/health"
	"github.com/edu-analytics/courserec/internal/models"
	"github.com/edu-analytics/courserec/internal/requestlog"
	"github.com/edu-analytics/courserec/internal/services"
	"github.com/edu-analytics/courserec/internal/similarity"
	"github.com/edu-analytics/courserec/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting catalog recommendation service...")

	cfg, err := config.Load(config.ServiceCatalog)
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

	src, err := storage.CatalogSource(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Invalid catalog source")
	}
	cat, err := catalog.Load(ctx, src)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load course catalog")
	}

	matrix, err := similarity.Build(cat.Descriptions(), similarity.NewVectorizer(similarity.Options{
		Stemming: cfg.Similarity.Stemming,
	}))
	if err != nil {
		logger.WithError(err).Fatal("Failed to build similarity matrix")
	}

	recommender, err := services.NewCatalogRecommender(cat, matrix, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create recommender")
	}

	logger.WithFields(logrus.Fields{
		"courses":  cat.Len(),
		"source":   cfg.Catalog.Source,
		"stemming": cfg.Similarity.Stemming,
	}).Info("Course catalog loaded")

	recorder := analytics.NewRecorder(
		requestlog.New[models.CatalogRecommendation](cfg.RequestLog.Capacity),
		analytics.CatalogEvent,
		logger,
		storage.Sinks(cfg)...,
	)

	opts, cleanup := app.RouterOptions(cfg, logger)
	defer cleanup()

	common := handlers.NewCommonHandler(api.CatalogServiceName, api.CatalogEndpoints(), health.ForManager(storage.Manager, logger), logger)
	router := api.NewCatalogRouter(opts, common, handlers.NewCatalogHandler(recommender, recorder, opts.Metrics, logger))

	if err := app.Serve(ctx, ":"+cfg.Server.Port, router, logger); err != nil {
		logger.WithError(err).Error("HTTP server stopped with error")
	}

	recorder.Wait()
	logger.Info("Catalog recommendation service stopped")
}
