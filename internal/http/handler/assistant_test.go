package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"zalestorm.app/crm/common/llm"
	"zalestorm.app/crm/common/sse"
	"zalestorm.app/crm/internal/http/handler"
	"zalestorm.app/crm/internal/http/middleware"
	"zalestorm.app/crm/internal/model"
	"zalestorm.app/crm/internal/prompt"
	"zalestorm.app/crm/internal/service"
	"zalestorm.app/crm/internal/store"
)

var _ = Describe("AssistantHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAssistantService
		users  *mockUserStore
	)

	post := func(token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/assistant", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		svc = &mockAssistantService{}
		users = &mockUserStore{
			getByTokenFn: func(_ context.Context, token string) (*model.User, error) {
				if token == "valid-token" {
					return &model.User{ID: 7, Email: "pat@zalestorm.app"}, nil
				}
				return nil, store.ErrNotFound
			},
		}

		router = gin.New()
		h := handler.NewAssistantHandler(svc)
		router.POST("/api/v1/ai/assistant", middleware.RequireAuth(users), h.Handle)
	})

	Describe("authentication", func() {
		It("rejects a missing bearer token before any service call", func() {
			w := post("", `{"action": "chat", "messages": []}`)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("Non autorisé - authentification requise"))
			Expect(users.lookupCalls).To(BeZero())
			Expect(svc.chatCalls).To(BeZero())
		})

		It("rejects an unknown token with the same message", func() {
			w := post("wrong-token", `{"action": "chat", "messages": []}`)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("Non autorisé"))
			Expect(svc.chatCalls).To(BeZero())
		})
	})

	Describe("action validation", func() {
		It("rejects an unknown action without calling the gateway", func() {
			w := post("valid-token", `{"action": "delete_everything"}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("Action non reconnue"))
			Expect(svc.chatCalls).To(BeZero())
			Expect(svc.executeCalls).To(BeZero())
		})

		It("rejects a body without an action", func() {
			w := post("valid-token", `{}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("chat streaming", func() {
		It("relays gateway frames as SSE and terminates with [DONE]", func() {
			svc.chatFn = func(_ context.Context, _ int64, _ []service.ChatMessage) (llm.Stream, error) {
				return &staticStream{chunks: []string{
					`{"choices":[{"delta":{"content":"Hello"}}]}`,
					`{"choices":[{"delta":{"content":" world"}}]}`,
				}}, nil
			}

			w := post("valid-token", `{"action": "chat", "messages": [{"role": "user", "content": "salut"}]}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(Equal("text/event-stream"))

			content, err := llm.AccumulateContent(w.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(content).To(Equal("Hello world"))
		})

		It("emits frames a standard SSE decoder can consume", func() {
			svc.chatFn = func(_ context.Context, _ int64, _ []service.ChatMessage) (llm.Stream, error) {
				return &staticStream{chunks: []string{`{"id":"1"}`, `{"id":"2"}`}}, nil
			}

			w := post("valid-token", `{"action": "chat"}`)

			dec := sse.NewDecoder(w.Body)
			var frames []string
			for dec.Next() {
				frames = append(frames, string(dec.Data()))
			}
			Expect(dec.Err()).NotTo(HaveOccurred())
			Expect(dec.Done()).To(BeTrue())
			Expect(frames).To(Equal([]string{`{"id":"1"}`, `{"id":"2"}`}))
		})

		It("maps rate limiting to 429 with the French message", func() {
			svc.chatFn = func(_ context.Context, _ int64, _ []service.ChatMessage) (llm.Stream, error) {
				return nil, llm.ErrRateLimited
			}

			w := post("valid-token", `{"action": "chat"}`)

			Expect(w.Code).To(Equal(http.StatusTooManyRequests))
			Expect(w.Body.String()).To(ContainSubstring("Limite de requêtes atteinte, réessayez plus tard."))
		})

		It("maps quota exhaustion to 402", func() {
			svc.chatFn = func(_ context.Context, _ int64, _ []service.ChatMessage) (llm.Stream, error) {
				return nil, llm.ErrQuotaExhausted
			}

			w := post("valid-token", `{"action": "chat"}`)

			Expect(w.Code).To(Equal(http.StatusPaymentRequired))
			Expect(w.Body.String()).To(ContainSubstring("Crédits IA épuisés, veuillez recharger."))
		})

		It("maps other upstream failures to 502", func() {
			svc.chatFn = func(_ context.Context, _ int64, _ []service.ChatMessage) (llm.Stream, error) {
				return nil, &llm.UpstreamError{StatusCode: 500}
			}

			w := post("valid-token", `{"action": "chat"}`)

			Expect(w.Code).To(Equal(http.StatusBadGateway))
			Expect(w.Body.String()).To(ContainSubstring("Erreur du service IA"))
		})
	})

	Describe("structured actions", func() {
		It("returns the service body verbatim", func() {
			svc.executeFn = func(_ context.Context, action prompt.Action, _ json.RawMessage) (json.RawMessage, error) {
				Expect(action).To(Equal(prompt.ActionLeadScoring))
				return json.RawMessage(`{"score": 91, "reasons": [], "recommendations": []}`), nil
			}

			w := post("valid-token", `{"action": "lead_scoring", "context": {"name": "ACME"}}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(strings.TrimSpace(w.Body.String())).To(Equal(`{"score": 91, "reasons": [], "recommendations": []}`))
		})

		It("forwards the raw context to the service", func() {
			var gotContext json.RawMessage
			svc.executeFn = func(_ context.Context, _ prompt.Action, rawContext json.RawMessage) (json.RawMessage, error) {
				gotContext = rawContext
				return json.RawMessage(`{}`), nil
			}

			post("valid-token", `{"action": "summarize", "context": {"deal": "Contrat Dupont", "value": 1200}}`)

			Expect(string(gotContext)).To(MatchJSON(`{"deal": "Contrat Dupont", "value": 1200}`))
		})
	})
})
