package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"zalestorm.app/crm/common/logger"
	"zalestorm.app/crm/internal/http/dto"
	"zalestorm.app/crm/internal/http/middleware"
	"zalestorm.app/crm/internal/prompt"
	"zalestorm.app/crm/internal/service"
)

type AssistantHandler struct {
	assistantService service.AssistantService
}

func NewAssistantHandler(assistantService service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// Handle serves POST /api/v1/ai/assistant. The chat action streams; every
// other action responds with a single JSON body.
func (h *AssistantHandler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action, err := prompt.ParseAction(req.Action)
	if err != nil {
		writeAIError(c, err)
		return
	}

	owner := middleware.GetUser(ctx)
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		OwnerID: logger.Ptr(owner.ID),
		Action:  logger.Ptr(string(action)),
	})
	c.Request = c.Request.WithContext(ctx)

	if action == prompt.ActionChat {
		h.streamChat(c, owner.ID, req.Messages)
		return
	}

	body, err := h.assistantService.Execute(ctx, action, req.Context)
	if err != nil {
		writeAIError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// streamChat relays gateway frames verbatim as SSE. Errors that occur after
// the first frame can only end the stream; the status line is already gone.
func (h *AssistantHandler) streamChat(c *gin.Context, ownerID int64, messages []service.ChatMessage) {
	ctx := c.Request.Context()

	stream, err := h.assistantService.Chat(ctx, ownerID, messages)
	if err != nil {
		writeAIError(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	flusher, _ := c.Writer.(http.Flusher)
	for stream.Next() {
		fmt.Fprintf(c.Writer, "data: %s\n\n", stream.Current().Raw)
		if flusher != nil {
			flusher.Flush()
		}
	}
	if err := stream.Err(); err != nil {
		slog.WarnContext(ctx, "chat stream interrupted", "error", err)
	}

	fmt.Fprint(c.Writer, "data: [DONE]\n\n")
	if flusher != nil {
		flusher.Flush()
	}
}
