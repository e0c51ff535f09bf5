package handlers

import (
	"net/http"

	"github.com/edu-analytics/courserec/internal/analytics"
	"github.com/edu-analytics/courserec/internal/metrics"
	"github.com/edu-analytics/courserec/internal/models"
	"github.com/edu-analytics/courserec/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	recommender *services.CatalogRecommender
	recorder    *analytics.Recorder[models.CatalogRecommendation]
	metrics     *metrics.Metrics
	logger      *logrus.Logger
}

func NewCatalogHandler(
	recommender *services.CatalogRecommender,
	recorder *analytics.Recorder[models.CatalogRecommendation],
	m *metrics.Metrics,
	logger *logrus.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		recommender: recommender,
		recorder:    recorder,
		metrics:     m,
		logger:      logger,
	}
}

// HandleCourses lists every course in load order.
func (h *CatalogHandler) HandleCourses(c *gin.Context) {
	c.JSON(http.StatusOK, h.recommender.Catalog().Summaries())
}

// HandleRecommend returns the courses most similar to course_id.
func (h *CatalogHandler) HandleRecommend(c *gin.Context) {
	var req models.CatalogRecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Debug("Unreadable recommend body, treating as empty")
		req = models.CatalogRecommendRequest{}
	}

	rec, err := h.recommender.Recommend(req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.recorder.Record(*rec)
	h.metrics.RecordRecommendation(analytics.VariantCatalog)

	h.logger.WithFields(logrus.Fields{
		"course_id":       rec.CourseID,
		"recommendations": len(rec.Recommendations),
	}).Info("Catalog recommendation served")

	c.JSON(http.StatusOK, rec)
}

func (h *CatalogHandler) HandleAnalytics() gin.HandlerFunc {
	return AnalyticsHandler(h.recorder.Items)
}
