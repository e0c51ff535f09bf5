package health

import (
	"context"
	"time"

	"github.com/edu-analytics/courserec/internal/database"
	"github.com/sirupsen/logrus"
)

// PingFunc checks one dependency.
type PingFunc func(ctx context.Context) error

// HealthChecker reports the state of the optional storage dependencies.
type HealthChecker struct {
	checks    []namedCheck
	logger    *logrus.Logger
	startTime time.Time
	timeout   time.Duration
}

type namedCheck struct {
	name string
	ping PingFunc
}

func NewHealthChecker(logger *logrus.Logger) *HealthChecker {
	return &HealthChecker{
		logger:    logger,
		startTime: time.Now(),
		timeout:   5 * time.Second,
	}
}

// ForManager registers a check for every connection the manager holds.
func ForManager(dbManager *database.Manager, logger *logrus.Logger) *HealthChecker {
	h := NewHealthChecker(logger)
	if dbManager == nil {
		return h
	}
	if dbManager.DB != nil {
		h.Register("postgresql", dbManager.PingDatabase)
	}
	if dbManager.Redis != nil {
		h.Register("redis", dbManager.PingRedis)
	}
	return h
}

func (h *HealthChecker) Register(name string, ping PingFunc) {
	h.checks = append(h.checks, namedCheck{name: name, ping: ping})
}

// ServiceHealth represents the health status of a service
type ServiceHealth struct {
	Name         string `json:"name"`
	Status       string `json:"status"`
	ResponseTime int    `json:"response_time_ms"`
	Error        string `json:"error,omitempty"`
	LastChecked  string `json:"last_checked"`
}

// OverallHealth represents the overall system health
type OverallHealth struct {
	Status   string          `json:"status"`
	Services []ServiceHealth `json:"services"`
	Uptime   string          `json:"uptime"`
}

func (h *HealthChecker) check(ctx context.Context, c namedCheck) ServiceHealth {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	err := c.ping(ctx)
	responseTime := int(time.Since(start).Milliseconds())

	status := "healthy"
	errorMsg := ""
	if err != nil {
		status = "unhealthy"
		errorMsg = err.Error()
		h.logger.WithError(err).WithField("service", c.name).Error("Health check failed")
	}

	return ServiceHealth{
		Name:         c.name,
		Status:       status,
		ResponseTime: responseTime,
		Error:        errorMsg,
		LastChecked:  time.Now().UTC().Format(time.RFC3339),
	}
}

// CheckAll performs health checks on all registered services
func (h *HealthChecker) CheckAll(ctx context.Context) OverallHealth {
	services := make([]ServiceHealth, 0, len(h.checks))
	overallStatus := "healthy"

	for _, c := range h.checks {
		result := h.check(ctx, c)
		if result.Status == "unhealthy" {
			overallStatus = "unhealthy"
		}
		services = append(services, result)
	}

	return OverallHealth{
		Status:   overallStatus,
		Services: services,
		Uptime:   time.Since(h.startTime).Round(time.Second).String(),
	}
}
