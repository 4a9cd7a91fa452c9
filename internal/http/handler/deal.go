package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zalestorm.app/crm/internal/http/dto"
	"zalestorm.app/crm/internal/http/middleware"
	"zalestorm.app/crm/internal/model"
	"zalestorm.app/crm/internal/service"
)

type DealHandler struct {
	dealService service.DealService
}

func NewDealHandler(dealService service.DealService) *DealHandler {
	return &DealHandler{dealService: dealService}
}

func (h *DealHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	deals, err := h.dealService.List(ctx, owner.ID, listOptions(c))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponses(deals))
}

func (h *DealHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	dealID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identifiant invalide"})
		return
	}

	deal, err := h.dealService.Get(ctx, owner.ID, dealID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

func (h *DealHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	var req dto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deal, err := h.dealService.Create(ctx, &model.Deal{
		OwnerID:           owner.ID,
		Title:             req.Title,
		Value:             req.Value,
		Stage:             req.Stage,
		Probability:       req.Probability,
		ContactID:         req.ContactID,
		CompanyID:         req.CompanyID,
		ExpectedCloseDate: req.ExpectedCloseDate,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToDealResponse(deal))
}

func (h *DealHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	dealID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identifiant invalide"})
		return
	}

	var req dto.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deal, err := h.dealService.Update(ctx, &model.Deal{
		ID:                dealID,
		OwnerID:           owner.ID,
		Title:             req.Title,
		Value:             req.Value,
		Stage:             req.Stage,
		Probability:       req.Probability,
		ContactID:         req.ContactID,
		CompanyID:         req.CompanyID,
		ExpectedCloseDate: req.ExpectedCloseDate,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

func (h *DealHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	dealID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identifiant invalide"})
		return
	}

	if err := h.dealService.Delete(ctx, owner.ID, dealID); err != nil {
		writeStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
