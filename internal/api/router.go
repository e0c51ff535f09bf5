// Package api assembles the gin engines of the catalog and interest services.
package api

import (
	"github.com/edu-analytics/courserec/internal/api/handlers"
	"github.com/edu-analytics/courserec/internal/metrics"
	"github.com/edu-analytics/courserec/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	CatalogServiceName  = "Edu Analytics ML API"
	InterestServiceName = "Edu Analytics Interest API"
)

// Options carries the cross-cutting pieces shared by both routers.
// RateLimiter and Metrics may be nil.
type Options struct {
	Mode        string
	RateLimiter *middleware.RateLimiter
	Metrics     *metrics.Metrics
	Logger      *logrus.Logger
}

func CatalogEndpoints() map[string]string {
	return map[string]string{
		"GET /health":     "Service health check",
		"GET /courses":    "List all courses",
		"POST /recommend": "Recommend similar courses for a course_id",
		"GET /analytics":  "Recent recommendation requests",
	}
}

func InterestEndpoints() map[string]string {
	return map[string]string{
		"GET /health":     "Service health check",
		"POST /recommend": "Recommend courses for a list of interests",
		"GET /analytics":  "Recent recommendation requests",
	}
}

func NewCatalogRouter(opts Options, common *handlers.CommonHandler, h *handlers.CatalogHandler) *gin.Engine {
	router := newEngine(opts, common)
	router.GET("/courses", h.HandleCourses)
	router.POST("/recommend", h.HandleRecommend)
	router.GET("/analytics", h.HandleAnalytics())
	return router
}

func NewInterestRouter(opts Options, common *handlers.CommonHandler, h *handlers.InterestHandler) *gin.Engine {
	router := newEngine(opts, common)
	router.POST("/recommend", h.HandleRecommend)
	router.GET("/analytics", h.HandleAnalytics())
	return router
}

func newEngine(opts Options, common *handlers.CommonHandler) *gin.Engine {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.AccessLog(opts.Logger))
	router.Use(opts.Metrics.Middleware())
	if opts.RateLimiter != nil {
		router.Use(opts.RateLimiter.RateLimit())
	}

	router.GET("/", common.HandleRoot)
	router.GET("/health", common.HandleHealth)
	router.GET("/health/dependencies", common.HandleDependencies)
	if opts.Metrics != nil {
		router.GET("/metrics", opts.Metrics.Handler())
	}
	return router
}
