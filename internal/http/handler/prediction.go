package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"zalestorm.app/crm/internal/http/dto"
	"zalestorm.app/crm/internal/service"
)

type PredictionHandler struct {
	predictionService service.PredictionService
}

func NewPredictionHandler(predictionService service.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// Handle serves POST /api/v1/ai/predictions.
func (h *PredictionHandler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.predictionService.Predict(ctx, req.Deals)
	if err != nil {
		if errors.Is(err, service.ErrNoDeals) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Aucun deal à analyser"})
			return
		}
		writeAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
