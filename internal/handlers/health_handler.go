package handlers

import (
	"context"
	"net/http"
	"time"

	"fintrack/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is a dependency the health check pings besides the database
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db    *gorm.DB
	deps  map[string]Pinger
	clock func() time.Time
}

// NewHealthCheckHandler creates a new health check handler. deps are reported
// by name and may be empty.
func NewHealthCheckHandler(db *gorm.DB, deps map[string]Pinger) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, deps: deps, clock: time.Now}
}

// HealthCheck reports database and dependency connectivity
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,checks=object} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	checks := map[string]string{"database": "up"}
	for name, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails(name+" connection failed"))
		}
		checks[name] = "up"
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"time":   h.clock().UTC().Format(time.RFC3339),
		"checks": checks,
	})
}
