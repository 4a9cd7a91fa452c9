package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"zalestorm.app/crm/internal/http/dto"
	"zalestorm.app/crm/internal/http/middleware"
	"zalestorm.app/crm/internal/service"
)

type SyncHandler struct {
	syncService service.SyncService
}

func NewSyncHandler(syncService service.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// Handle serves POST /api/v1/integrations/company-api. The action field
// selects the operation, mirroring the dashboard's integration panel.
func (h *SyncHandler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owner := middleware.GetUser(ctx)

	switch req.Action {
	case dto.SyncActionTestConnection:
		if err := h.syncService.TestConnection(ctx, req.Config); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})

	case dto.SyncActionSyncData:
		result, err := h.syncService.Sync(ctx, owner.ID, req.DataType, req.Config)
		if err != nil {
			if errors.Is(err, service.ErrInvalidDataType) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)

	case dto.SyncActionSyncAll:
		results, err := h.syncService.SyncAll(ctx, owner.ID, req.Config)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, results)

	case dto.SyncActionGetConfig:
		c.JSON(http.StatusOK, h.syncService.GetConfig())

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMsgInvalidAction})
	}
}
