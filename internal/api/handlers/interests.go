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

type InterestHandler struct {
	recommender *services.InterestRecommender
	recorder    *analytics.Recorder[models.InterestRecommendation]
	metrics     *metrics.Metrics
	logger      *logrus.Logger
}

func NewInterestHandler(
	recommender *services.InterestRecommender,
	recorder *analytics.Recorder[models.InterestRecommendation],
	m *metrics.Metrics,
	logger *logrus.Logger,
) *InterestHandler {
	return &InterestHandler{
		recommender: recommender,
		recorder:    recorder,
		metrics:     m,
		logger:      logger,
	}
}

// HandleRecommend samples titles for the declared interests.
func (h *InterestHandler) HandleRecommend(c *gin.Context) {
	var req models.InterestRecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Debug("Unreadable recommend body, treating as empty")
		req = models.InterestRecommendRequest{}
	}

	rec, err := h.recommender.Recommend(req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.recorder.Record(*rec)
	h.metrics.RecordRecommendation(analytics.VariantInterests)

	h.logger.WithFields(logrus.Fields{
		"interests":       rec.Interests,
		"recommendations": len(rec.Recommendations),
	}).Info("Interest recommendation served")

	c.JSON(http.StatusOK, rec)
}

func (h *InterestHandler) HandleAnalytics() gin.HandlerFunc {
	return AnalyticsHandler(h.recorder.Items)
}
