package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zalestorm.app/crm/internal/http/dto"
	"zalestorm.app/crm/internal/http/middleware"
	"zalestorm.app/crm/internal/model"
	"zalestorm.app/crm/internal/service"
)

type CompanyHandler struct {
	companyService service.CompanyService
}

func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func (h *CompanyHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	companies, err := h.companyService.List(ctx, owner.ID, listOptions(c))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponses(companies))
}

func (h *CompanyHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	companyID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identifiant invalide"})
		return
	}

	company, err := h.companyService.Get(ctx, owner.ID, companyID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

func (h *CompanyHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.Create(ctx, &model.Company{
		OwnerID:  owner.ID,
		Name:     req.Name,
		Industry: req.Industry,
		Website:  req.Website,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

func (h *CompanyHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	companyID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identifiant invalide"})
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.Update(ctx, &model.Company{
		ID:       companyID,
		OwnerID:  owner.ID,
		Name:     req.Name,
		Industry: req.Industry,
		Website:  req.Website,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	companyID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identifiant invalide"})
		return
	}

	if err := h.companyService.Delete(ctx, owner.ID, companyID); err != nil {
		writeStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
