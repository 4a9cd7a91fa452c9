// Package llm is the client for the hosted chat-completion gateway. The
// gateway speaks the OpenAI chat-completions protocol; one fixed model is
// configured per deployment. Failures are never retried here — rate-limit and
// quota errors are surfaced to the caller as-is.
package llm

import (
	"context"
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Message roles accepted by the gateway.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a conversation message.
type Message struct {
	Role    string
	Content string
}

// Request contains the composed messages for one gateway call.
type Request struct {
	Messages    []Message
	SchemaName  string // Optional: name for structured output
	Schema      any    // Optional: JSON schema constraining the response
	MaxTokens   int
	Temperature *float64 // nil = model default
}

// Chunk is one streamed SSE frame payload, verbatim gateway JSON.
type Chunk struct {
	Raw json.RawMessage
}

// Stream yields chat-completion chunks as the gateway produces them.
type Stream interface {
	Next() bool
	Current() Chunk
	Err() error
	Close() error
}

// Client issues chat-completion calls against the gateway.
type Client interface {
	// Complete performs a buffered call and returns the first choice's
	// message content.
	Complete(ctx context.Context, req Request) (string, error)
	// Stream performs a streaming call. The returned stream is primed: a
	// request-level failure (rate limit, quota, upstream error) is reported
	// here rather than on the first Next.
	Stream(ctx context.Context, req Request) (Stream, error)
	Model() string
}

type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

// GenerateSchema generates a JSON schema for T, used to constrain structured
// gateway responses.
func GenerateSchema[T any]() any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

func Temp(t float64) *float64 {
	return &t
}
