package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/edu-analytics/courserec/internal/app"
	"github.com/edu-analytics/courserec/internal/config"
	"github.com/edu-analytics/courserec/internal/seeder"
	"github.com/edu-analytics/courserec/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Command line flags
var (
	out     = flag.String("out", "", "Write the scraped catalog to this CSV file (default catalog.path)")
	toDB    = flag.Bool("db", false, "Replace the courses table instead of writing CSV")
	dryRun  = flag.Bool("dry-run", false, "Don't write anything, just print what would be written")
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	logger := utils.GetLogger()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	logger.Info("Starting course catalog seeder...")

	cfg, err := config.Load(config.ServiceSeed)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if err := cfg.ValidateSeed(); err != nil {
		logger.WithError(err).Fatal("Seed configuration validation failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scraper := seeder.NewScraper(seeder.Selectors{
		Item:        cfg.Seed.ItemSelector,
		Title:       cfg.Seed.TitleSelector,
		Description: cfg.Seed.DescriptionSelector,
	}, logger)

	courses, err := scraper.Scrape(ctx, cfg.Seed.URL)
	if err != nil {
		logger.WithError(err).Fatal("Scraping failed")
	}

	if *dryRun {
		logger.WithField("courses", len(courses)).Info("DRY RUN: Would write catalog")
		fmt.Print(seeder.Describe(courses))
		return
	}

	if *toDB {
		cfg.Database.Enabled = true
		storage, err := app.OpenStorage(ctx, cfg, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to initialize database")
		}
		defer storage.Close()

		previous, err := seeder.Store(storage.Repos.Course, courses)
		if err != nil {
			logger.WithError(err).Fatal("Failed to store courses")
		}
		logger.WithFields(logrus.Fields{
			"courses":  len(courses),
			"replaced": previous,
		}).Info("Courses table replaced")
		return
	}

	path := *out
	if path == "" {
		path = cfg.Catalog.Path
	}
	if err := seeder.WriteCSVFile(path, courses); err != nil {
		logger.WithError(err).Fatal("Failed to write catalog")
	}
	logger.WithFields(logrus.Fields{
		"courses": len(courses),
		"path":    path,
	}).Info("Catalog written")
}
