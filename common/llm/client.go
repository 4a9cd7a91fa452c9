package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"
)

type client struct {
	openai    openai.Client
	model     string
	maxTokens int
}

func New(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = "google/gemini-2.5-flash"
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	return &client{
		openai:    openai.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

func (c *client) Complete(ctx context.Context, req Request) (string, error) {
	params := c.buildParams(req)

	start := time.Now()
	resp, err := c.openai.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", mapGatewayError(err)
	}

	slog.DebugContext(ctx, "gateway completion finished",
		"model", c.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Err: fmt.Errorf("no choices in response")}
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *client) Stream(ctx context.Context, req Request) (Stream, error) {
	params := c.buildParams(req)

	inner := c.openai.Chat.Completions.NewStreaming(ctx, params)

	// Prime the stream so request-level failures surface at call time,
	// before the caller has committed to an event-stream response.
	s := &gatewayStream{inner: inner}
	if inner.Next() {
		chunk := inner.Current()
		s.first = &Chunk{Raw: json.RawMessage(chunk.RawJSON())}
	} else if err := inner.Err(); err != nil {
		_ = inner.Close()
		return nil, mapGatewayError(err)
	}

	return s, nil
}

func (c *client) Model() string {
	return c.model
}

func (c *client) buildParams(req Request) openai.ChatCompletionNewParams {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Content))
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: openai.Int(int64(maxTokens)),
	}

	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	if req.Schema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        req.SchemaName,
					Description: openai.String("Structured response schema"),
					Schema:      req.Schema,
					Strict:      openai.Bool(true),
				},
			},
		}
	}

	return params
}

type gatewayStream struct {
	inner *ssestream.Stream[openai.ChatCompletionChunk]
	first *Chunk
	cur   Chunk
	err   error
}

func (s *gatewayStream) Next() bool {
	if s.err != nil {
		return false
	}
	if s.first != nil {
		s.cur = *s.first
		s.first = nil
		return true
	}
	if s.inner.Next() {
		s.cur = Chunk{Raw: json.RawMessage(s.inner.Current().RawJSON())}
		return true
	}
	if err := s.inner.Err(); err != nil {
		s.err = mapGatewayError(err)
	}
	return false
}

func (s *gatewayStream) Current() Chunk {
	return s.cur
}

func (s *gatewayStream) Err() error {
	return s.err
}

func (s *gatewayStream) Close() error {
	return s.inner.Close()
}
