package handler

import (
	financeapp "github.com/aqario/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the tenant dashboard
type DashboardHandler struct {
	BaseHandler
	dashboardService *financeapp.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *financeapp.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      newBaseHandler(logger),
		dashboardService: dashboardService,
	}
}

// Stats godoc
// @ID           getDashboardStats
// @Summary      Dashboard statistics
// @Description  Counts and revenue for the selected tenant
// @Tags         dashboard
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Success      200 {object} APIResponse[financeapp.DashboardStats]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/stats/ [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.Stats(c.Request.Context(), scope)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}
