package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zalestorm.app/crm/internal/http/middleware"
	"zalestorm.app/crm/internal/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats serves GET /api/v1/dashboard/stats.
func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	stats, err := h.dashboardService.Stats(ctx, owner.ID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
