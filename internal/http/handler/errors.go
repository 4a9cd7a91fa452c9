package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"zalestorm.app/crm/common/llm"
	"zalestorm.app/crm/internal/prompt"
	"zalestorm.app/crm/internal/store"
)

// User-facing error messages. The UI is French; these strings are part of its
// contract and must not be reworded casually.
const (
	ErrMsgInvalidAction = "Action non reconnue"
	ErrMsgRateLimited   = "Limite de requêtes atteinte, réessayez plus tard."
	ErrMsgQuotaExceeded = "Crédits IA épuisés, veuillez recharger."
	ErrMsgAIService     = "Erreur du service IA"
	ErrMsgInternal      = "Erreur interne du service"
)

// writeAIError maps gateway and validation failures to the response taxonomy.
// Anything unrecognized collapses to the generic internal message.
func writeAIError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var upstream *llm.UpstreamError
	switch {
	case errors.Is(err, prompt.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMsgInvalidAction})
	case errors.Is(err, llm.ErrRateLimited):
		slog.WarnContext(ctx, "gateway rate limited", "error", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": ErrMsgRateLimited})
	case errors.Is(err, llm.ErrQuotaExhausted):
		slog.WarnContext(ctx, "gateway quota exhausted", "error", err)
		c.JSON(http.StatusPaymentRequired, gin.H{"error": ErrMsgQuotaExceeded})
	case errors.As(err, &upstream):
		slog.ErrorContext(ctx, "gateway error", "error", err, "status", upstream.StatusCode)
		c.JSON(http.StatusBadGateway, gin.H{"error": ErrMsgAIService})
	default:
		slog.ErrorContext(ctx, "unexpected error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrMsgInternal})
	}
}

// writeStoreError maps store failures for the CRUD surface.
func writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ressource introuvable"})
		return
	}
	slog.ErrorContext(c.Request.Context(), "store error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": ErrMsgInternal})
}
