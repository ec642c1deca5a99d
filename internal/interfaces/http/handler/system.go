package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/aqario/backend/internal/interfaces/http/dto"
	"github.com/aqario/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthCheck checks one dependency for the readiness endpoint
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// SystemHandler serves the API root and the health checks
type SystemHandler struct {
	BaseHandler
	name      string
	version   string
	startTime time.Time
	checks    []HealthCheck
	timeout   time.Duration
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(name, version string, logger *zap.Logger, checks ...HealthCheck) *SystemHandler {
	return &SystemHandler{
		BaseHandler: newBaseHandler(logger),
		name:        name,
		version:     version,
		startTime:   time.Now(),
		checks:      checks,
		timeout:     2 * time.Second,
	}
}

// RootResponse describes the API root
// @name HandlerRootResponse
type RootResponse struct {
	Name      string            `json:"name" example:"Aqario API"`
	Version   string            `json:"version" example:"1.0.0"`
	Status    string            `json:"status" example:"ok"`
	GoVersion string            `json:"go_version" example:"go1.25.5"`
	Uptime    string            `json:"uptime" example:"1h30m45s"`
	Endpoints map[string]string `json:"endpoints"`
}

// Root godoc
// @ID           getApiRoot
// @Summary      API root
// @Description  Returns the API name, version and the main endpoints
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[RootResponse]
// @Router       / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	h.Success(c, RootResponse{
		Name:      h.name,
		Version:   h.version,
		Status:    "ok",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Endpoints: map[string]string{
			"auth":       "/api/v1/auth/",
			"tenants":    "/api/v1/tenants/",
			"users":      "/api/v1/users/",
			"properties": "/api/v1/properties/",
			"clients":    "/api/v1/clients/",
			"contracts":  "/api/v1/contracts/",
			"invoices":   "/api/v1/invoices/",
			"dashboard":  "/api/v1/dashboard/stats/",
			"docs":       "/swagger/index.html",
		},
	})
}

// Health reports liveness
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Ready runs every dependency check and answers 503 when one fails
func (h *SystemHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checks))
	for _, check := range h.checks {
		if err := check.Check(ctx); err != nil {
			h.logger.Warn("Readiness check failed", zap.String("check", check.Name), zap.Error(err))
			results[check.Name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		results[check.Name] = "ok"
	}

	if status != http.StatusOK {
		c.JSON(status, gin.H{"status": "unhealthy", "checks": results})
		return
	}
	c.JSON(status, gin.H{"status": "healthy", "checks": results})
}

// NoRoute answers unknown paths with the error envelope
func (h *SystemHandler) NoRoute(c *gin.Context) {
	h.NotFound(c)
}

// NoMethod answers known paths requested with an unsupported method
func (h *SystemHandler) NoMethod(c *gin.Context) {
	c.Set(middleware.ErrorCodeKey, "METHOD_NOT_ALLOWED")
	c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponseWithDetails("METHOD_NOT_ALLOWED",
		"Method \""+c.Request.Method+"\" not allowed", getRequestID(c), nil))
}
