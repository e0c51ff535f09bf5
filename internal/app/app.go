// Package app wires configuration into the storage, analytics and HTTP pieces
// shared by the service binaries.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/edu-analytics/courserec/internal/analytics"
	"github.com/edu-analytics/courserec/internal/api"
	"github.com/edu-analytics/courserec/internal/catalog"
	"github.com/edu-analytics/courserec/internal/config"
	"github.com/edu-analytics/courserec/internal/database"
	"github.com/edu-analytics/courserec/internal/metrics"
	"github.com/edu-analytics/courserec/internal/middleware"
	"github.com/edu-analytics/courserec/internal/migration"
	"github.com/edu-analytics/courserec/internal/repository"
	"github.com/sirupsen/logrus"
)

// Storage bundles the optional connections of a service. Repos is nil without Postgres.
type Storage struct {
	Manager *database.Manager
	Repos   *repository.RepositoryManager
}

// OpenStorage connects to the enabled backends, retrying while they come up,
// and migrates Postgres.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Storage, error) {
	dbConfig := &database.Config{
		DatabaseURL: cfg.Database.URL,
		RedisURL:    cfg.Redis.URL,
		LogLevel:    cfg.Database.LogLevel,
		UseDatabase: cfg.Database.Enabled,
		UseRedis:    cfg.Redis.Enabled,
	}

	var dbManager *database.Manager
	err := database.Retry(ctx, database.DefaultRetryConfig(), logger, func() error {
		var err error
		dbManager, err = database.NewManager(dbConfig, logger)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	s := &Storage{Manager: dbManager}
	if dbManager.DB != nil {
		if err := migration.NewRunner(dbManager, logger).RunMigrations(cfg.Database.Migrations); err != nil {
			dbManager.Close()
			return nil, err
		}
		s.Repos = repository.NewRepositoryManager(dbManager.DB)
	}
	return s, nil
}

func (s *Storage) Close() error {
	return s.Manager.Close()
}

// Sinks returns the analytics mirrors enabled by cfg.
func (s *Storage) Sinks(cfg *config.Config) []analytics.Sink {
	var sinks []analytics.Sink
	if s.Manager.Redis != nil {
		sinks = append(sinks, analytics.NewRedisSink(s.Manager.Redis, cfg.Analytics.RedisKey, cfg.RequestLog.Capacity))
	}
	if cfg.Analytics.Persist && s.Repos != nil {
		sinks = append(sinks, analytics.NewPostgresSink(s.Repos.RecommendationEvent))
	}
	return sinks
}

// CatalogSource picks where the course catalog is read from.
func (s *Storage) CatalogSource(cfg *config.Config) (catalog.Source, error) {
	switch cfg.Catalog.Source {
	case "postgres":
		if s.Repos == nil {
			return nil, fmt.Errorf("catalog.source=postgres but no database connection")
		}
		return catalog.NewDBSource(s.Repos.Course), nil
	default:
		return catalog.NewCSVSource(cfg.Catalog.Path), nil
	}
}

// RouterOptions builds the shared middleware pieces. The returned func releases them.
func RouterOptions(cfg *config.Config, logger *logrus.Logger) (api.Options, func()) {
	opts := api.Options{
		Mode:   cfg.Server.Mode,
		Logger: logger,
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = metrics.New()
	}
	if cfg.RateLimit.RPM > 0 {
		opts.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RPM)
	}

	return opts, func() {
		if opts.RateLimiter != nil {
			opts.RateLimiter.Stop()
		}
	}
}

// Serve runs handler on addr until ctx is done, then drains in-flight requests.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *logrus.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
