package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"zalestorm.app/crm/common/llm"
	"zalestorm.app/crm/internal/prompt"
	"zalestorm.app/crm/internal/sanitize"
	"zalestorm.app/crm/internal/store"
)

// maxChatHistory bounds the conversation tail forwarded to the gateway.
const maxChatHistory = 10

// Context fetch bounds for the chat snapshot.
const (
	snapshotContacts   = 50
	snapshotDeals      = 50
	snapshotActivities = 20
)

// ChatMessage is one turn of the assistant conversation as received from the
// client. Roles outside user/assistant are dropped.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// LeadScore is the structured response contract for the lead_scoring action.
type LeadScore struct {
	Score           int      `json:"score"`
	Reasons         []string `json:"reasons"`
	Recommendations []string `json:"recommendations"`
}

// SuggestedAction is one entry of the suggest_actions response.
type SuggestedAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority" jsonschema:"enum=high,enum=medium,enum=low"`
	Type        string `json:"type" jsonschema:"enum=call,enum=email,enum=meeting,enum=task"`
}

// SuggestedActions is the structured response contract for suggest_actions.
type SuggestedActions struct {
	Actions []SuggestedAction `json:"actions"`
}

// EmailDraft is the structured response contract for draft_email.
type EmailDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// AssistantService drives the AI assistant endpoint: streaming chat and the
// structured one-shot actions.
type AssistantService interface {
	// Chat opens a streaming completion over the sanitized conversation
	// tail. The CRM snapshot in the system prompt carries counts only.
	Chat(ctx context.Context, ownerID int64, messages []ChatMessage) (llm.Stream, error)
	// Execute runs a structured action and returns the response body:
	// the parsed JSON object on success, a {"result": text} envelope when
	// the model ignored the contract.
	Execute(ctx context.Context, action prompt.Action, rawContext json.RawMessage) (json.RawMessage, error)
}

type assistantService struct {
	gateway       llm.Client
	contactStore  store.ContactStore
	dealStore     store.DealStore
	activityStore store.ActivityStore
}

func NewAssistantService(gateway llm.Client, contacts store.ContactStore, deals store.DealStore, activities store.ActivityStore) AssistantService {
	return &assistantService{
		gateway:       gateway,
		contactStore:  contacts,
		dealStore:     deals,
		activityStore: activities,
	}
}

func (s *assistantService) Chat(ctx context.Context, ownerID int64, messages []ChatMessage) (llm.Stream, error) {
	p, err := prompt.Compose(prompt.ActionChat, nil, s.snapshot(ctx, ownerID))
	if err != nil {
		return nil, err
	}

	req := llm.Request{
		Messages: append([]llm.Message{{Role: llm.RoleSystem, Content: p.System}}, sanitizeHistory(messages)...),
	}

	stream, err := s.gateway.Stream(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("streaming chat: %w", err)
	}
	return stream, nil
}

func (s *assistantService) Execute(ctx context.Context, action prompt.Action, rawContext json.RawMessage) (json.RawMessage, error) {
	safe := sanitize.Context(rawContext, sanitize.MaxContextFields)

	p, err := prompt.Compose(action, safe, prompt.CRMSnapshot{})
	if err != nil {
		return nil, err
	}

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: p.System},
			{Role: llm.RoleUser, Content: p.User},
		},
	}
	if name, schema := actionSchema(action); schema != nil {
		req.SchemaName = name
		req.Schema = schema
	}

	text, err := s.gateway.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("executing %s: %w", action, err)
	}

	return parseStructured(text), nil
}

// snapshot fetches bounded record sets to derive the counts embedded in the
// chat system prompt. Fetch errors degrade to zero counts; chat still answers.
func (s *assistantService) snapshot(ctx context.Context, ownerID int64) prompt.CRMSnapshot {
	var snap prompt.CRMSnapshot

	contacts, err := s.contactStore.List(ctx, ownerID, store.ListOptions{Limit: snapshotContacts})
	if err != nil {
		slog.WarnContext(ctx, "snapshot contacts fetch failed", "error", err)
	} else {
		snap.Contacts = len(contacts)
	}

	deals, err := s.dealStore.List(ctx, ownerID, store.ListOptions{Limit: snapshotDeals})
	if err != nil {
		slog.WarnContext(ctx, "snapshot deals fetch failed", "error", err)
	} else {
		snap.Deals = len(deals)
	}

	activities, err := s.activityStore.List(ctx, ownerID, store.ListOptions{Limit: snapshotActivities})
	if err != nil {
		slog.WarnContext(ctx, "snapshot activities fetch failed", "error", err)
	} else {
		snap.Activities = len(activities)
	}

	return snap
}

// sanitizeHistory keeps the last maxChatHistory messages, drops roles other
// than user/assistant, and sanitizes each content.
func sanitizeHistory(messages []ChatMessage) []llm.Message {
	if len(messages) > maxChatHistory {
		messages = messages[len(messages)-maxChatHistory:]
	}

	out := make([]llm.Message, 0, len(messages))
	for _, m := range messages {
		if m.Role != llm.RoleUser && m.Role != llm.RoleAssistant {
			continue
		}
		content := sanitize.Text(m.Content, sanitize.MaxMessageLen)
		if content == "" {
			continue
		}
		out = append(out, llm.Message{Role: m.Role, Content: content})
	}
	return out
}

func actionSchema(action prompt.Action) (string, any) {
	switch action {
	case prompt.ActionLeadScoring:
		return "lead_score", llm.GenerateSchema[LeadScore]()
	case prompt.ActionSuggestActions:
		return "suggested_actions", llm.GenerateSchema[SuggestedActions]()
	case prompt.ActionDraftEmail:
		return "email_draft", llm.GenerateSchema[EmailDraft]()
	default:
		return "", nil
	}
}

// parseStructured extracts the JSON object from a model response. Code fences
// are stripped first; anything that still fails to parse is wrapped in a
// {"result": text} envelope rather than treated as an error.
func parseStructured(text string) json.RawMessage {
	stripped := stripFences(text)

	var v any
	if err := json.Unmarshal([]byte(stripped), &v); err == nil {
		return json.RawMessage(stripped)
	}

	envelope, _ := json.Marshal(map[string]string{"result": text})
	return envelope
}

func stripFences(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
