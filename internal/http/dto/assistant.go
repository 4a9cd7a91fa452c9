package dto

import (
	"encoding/json"

	"zalestorm.app/crm/internal/service"
)

// AssistantRequest is the body of POST /api/v1/ai/assistant. Chat carries the
// conversation in Messages; the other actions carry Context.
type AssistantRequest struct {
	Action   string                `json:"action" binding:"required"`
	Messages []service.ChatMessage `json:"messages,omitempty"`
	Context  json.RawMessage       `json:"context,omitempty"`
}
