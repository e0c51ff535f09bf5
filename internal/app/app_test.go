package app

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/edu-analytics/courserec/internal/catalog"
	"github.com/edu-analytics/courserec/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("PORT", "")
	cfg, err := config.Load(config.ServiceCatalog, t.TempDir())
	require.NoError(t, err)
	return cfg
}

func TestOpenStorage_NothingEnabled(t *testing.T) {
	cfg := loadConfig(t)

	s, err := OpenStorage(context.Background(), cfg, quietLogger())
	require.NoError(t, err)
	defer s.Close()

	assert.Nil(t, s.Repos)
	assert.Empty(t, s.Sinks(cfg))

	src, err := s.CatalogSource(cfg)
	require.NoError(t, err)
	assert.IsType(t, &catalog.CSVSource{}, src)

	cfg.Catalog.Source = "postgres"
	_, err = s.CatalogSource(cfg)
	assert.Error(t, err)
}

func TestRouterOptions(t *testing.T) {
	cfg := loadConfig(t)

	opts, cleanup := RouterOptions(cfg, quietLogger())
	defer cleanup()
	assert.NotNil(t, opts.Metrics)
	assert.Nil(t, opts.RateLimiter)

	cfg.Metrics.Enabled = false
	cfg.RateLimit.RPM = 10
	opts, cleanup2 := RouterOptions(cfg, quietLogger())
	defer cleanup2()
	assert.Nil(t, opts.Metrics)
	assert.NotNil(t, opts.RateLimiter)
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, "127.0.0.1:0", http.NotFoundHandler(), quietLogger())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
