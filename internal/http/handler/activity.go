package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zalestorm.app/crm/internal/http/dto"
	"zalestorm.app/crm/internal/http/middleware"
	"zalestorm.app/crm/internal/model"
	"zalestorm.app/crm/internal/service"
)

type ActivityHandler struct {
	activityService service.ActivityService
}

func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	activities, err := h.activityService.List(ctx, owner.ID, listOptions(c))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToActivityResponses(activities))
}

func (h *ActivityHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.activityService.Create(ctx, &model.Activity{
		OwnerID:     owner.ID,
		Type:        req.Type,
		Subject:     req.Subject,
		Description: req.Description,
		ContactID:   req.ContactID,
		DealID:      req.DealID,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToActivityResponse(activity))
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	activityID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identifiant invalide"})
		return
	}

	if err := h.activityService.Delete(ctx, owner.ID, activityID); err != nil {
		writeStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
