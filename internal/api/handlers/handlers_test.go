package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edu-analytics/courserec/internal/health"
	"github.com/edu-analytics/courserec/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		code int
		body string
	}{
		{services.ErrUserIDRequired, http.StatusBadRequest, `{"error":"user_id is required"}`},
		{fmt.Errorf("wrapped: %w", services.ErrCourseIDNotInteger), http.StatusBadRequest, `{"error":"wrapped: course_id must be an integer"}`},
		{&services.CourseNotFoundError{ID: 7}, http.StatusNotFound, `{"error":"Course ID 7 not found"}`},
		{errors.New("boom"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondError(c, quietLogger(), tc.err)

		assert.Equal(t, tc.code, w.Code)
		assert.JSONEq(t, tc.body, w.Body.String())
	}
}

func TestAnalyticsHandler_EmptyItems(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	AnalyticsHandler(func() []string { return []string{} })(c)
	assert.JSONEq(t, `{"count":0,"items":[]}`, w.Body.String())
}

func TestHandleDependencies_Unhealthy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	checker := health.NewHealthChecker(quietLogger())
	checker.Register("redis", func(ctx context.Context) error { return errors.New("down") })
	h := NewCommonHandler("svc", nil, checker, quietLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health/dependencies", nil)
	h.HandleDependencies(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
}
