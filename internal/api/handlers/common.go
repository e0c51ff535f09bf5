package handlers

import (
	"errors"
	"net/http"

	"github.com/edu-analytics/courserec/internal/health"
	"github.com/edu-analytics/courserec/internal/models"
	"github.com/edu-analytics/courserec/internal/services"
	"github.com/edu-analytics/courserec/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CommonHandler serves the routes both services share.
type CommonHandler struct {
	service   string
	endpoints map[string]string
	checker   *health.HealthChecker
	now       utils.Clock
	logger    *logrus.Logger
}

func NewCommonHandler(service string, endpoints map[string]string, checker *health.HealthChecker, logger *logrus.Logger) *CommonHandler {
	return &CommonHandler{
		service:   service,
		endpoints: endpoints,
		checker:   checker,
		now:       utils.SystemClock,
		logger:    logger,
	}
}

func (h *CommonHandler) WithClock(clock utils.Clock) *CommonHandler {
	h.now = clock
	return h
}

// HandleRoot describes the service and its endpoints.
func (h *CommonHandler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, models.RootResponse{
		Service:   h.service,
		Status:    "ok",
		Endpoints: h.endpoints,
	})
}

// HandleHealth never touches the catalog or storage.
func (h *CommonHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: utils.FormatTimestamp(h.now()),
	})
}

// HandleDependencies pings the enabled storage connections.
func (h *CommonHandler) HandleDependencies(c *gin.Context) {
	result := h.checker.CheckAll(c.Request.Context())

	status := http.StatusOK
	if result.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, result)
}

// AnalyticsHandler serves the recent-request log, newest first.
func AnalyticsHandler[T any](items func() []T) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := items()
		c.JSON(http.StatusOK, models.AnalyticsResponse[T]{
			Count: len(list),
			Items: list,
		})
	}
}

// respondError maps service errors onto the {"error": ...} contract.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	var notFound *services.CourseNotFoundError
	switch {
	case services.IsValidationError(err):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		logger.WithError(err).Error("Recommendation failed")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
