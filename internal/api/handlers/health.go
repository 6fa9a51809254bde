package handlers

import (
	"context"
	"net/http"
	"time"

	"todo-list-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// pingTimeout bounds a single database ping from a health endpoint
const pingTimeout = 2 * time.Second

// HealthHandler reports the liveness of the API and its database
type HealthHandler struct {
	db      *gorm.DB
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// ReadyResponse is the body of GET /health/ready
type ReadyResponse struct {
	Ready     bool              `json:"ready"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Overall status of the API including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Services:  map[string]string{"database": "healthy"},
	}

	if err := h.pingDatabase(c); err != nil {
		response.Status = "unhealthy"
		response.Services["database"] = "error: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Ready reports whether the API can serve tenant requests
// @Summary Readiness check
// @Description The API is ready once its database answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Application is ready"
// @Failure 503 {object} ReadyResponse "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	response := ReadyResponse{
		Ready:     true,
		Timestamp: time.Now(),
		Services:  map[string]string{"database": "ready"},
	}

	if err := h.pingDatabase(c); err != nil {
		response.Ready = false
		response.Services["database"] = "not ready: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Live returns 200 as long as the process serves HTTP
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

// pingDatabase pings the pool under the request context. Failures are
// logged with the request identity before they reach the response body.
func (h *HealthHandler) pingDatabase(c *gin.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.WithContext(c).WithError(err).Warn("database ping failed")
	}
	return err
}
