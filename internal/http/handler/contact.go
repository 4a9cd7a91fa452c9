package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"zalestorm.app/crm/internal/http/dto"
	"zalestorm.app/crm/internal/http/middleware"
	"zalestorm.app/crm/internal/model"
	"zalestorm.app/crm/internal/service"
	"zalestorm.app/crm/internal/store"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	contacts, err := h.contactService.List(ctx, owner.ID, listOptions(c))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponses(contacts))
}

func (h *ContactHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	contactID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identifiant invalide"})
		return
	}

	contact, err := h.contactService.Get(ctx, owner.ID, contactID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *ContactHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactService.Create(ctx, &model.Contact{
		OwnerID:   owner.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Position:  req.Position,
		CompanyID: req.CompanyID,
		Status:    req.Status,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToContactResponse(contact))
}

func (h *ContactHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	contactID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identifiant invalide"})
		return
	}

	var req dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactService.Update(ctx, &model.Contact{
		ID:        contactID,
		OwnerID:   owner.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Position:  req.Position,
		CompanyID: req.CompanyID,
		Status:    req.Status,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *ContactHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetUser(ctx)

	contactID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identifiant invalide"})
		return
	}

	if err := h.contactService.Delete(ctx, owner.ID, contactID); err != nil {
		writeStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func listOptions(c *gin.Context) store.ListOptions {
	opts := store.ListOptions{Search: c.Query("search")}
	if limit, err := strconv.ParseInt(c.Query("limit"), 10, 32); err == nil {
		opts.Limit = int32(limit)
	}
	if offset, err := strconv.ParseInt(c.Query("offset"), 10, 32); err == nil {
		opts.Offset = int32(offset)
	}
	return opts
}
