package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"zalestorm.app/crm/internal/http/handler"
	"zalestorm.app/crm/internal/http/middleware"
	"zalestorm.app/crm/internal/model"
	"zalestorm.app/crm/internal/service"
	"zalestorm.app/crm/internal/store"
)

type mockContactService struct {
	listFn   func(ctx context.Context, ownerID int64, opts store.ListOptions) ([]model.Contact, error)
	getFn    func(ctx context.Context, ownerID, id int64) (*model.Contact, error)
	createFn func(ctx context.Context, contact *model.Contact) (*model.Contact, error)
	updateFn func(ctx context.Context, contact *model.Contact) (*model.Contact, error)
	deleteFn func(ctx context.Context, ownerID, id int64) error
}

func (m *mockContactService) List(ctx context.Context, ownerID int64, opts store.ListOptions) ([]model.Contact, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID, opts)
	}
	return nil, nil
}

func (m *mockContactService) Get(ctx context.Context, ownerID, id int64) (*model.Contact, error) {
	if m.getFn != nil {
		return m.getFn(ctx, ownerID, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockContactService) Create(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	if m.createFn != nil {
		return m.createFn(ctx, contact)
	}
	return contact, nil
}

func (m *mockContactService) Update(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, contact)
	}
	return contact, nil
}

func (m *mockContactService) Delete(ctx context.Context, ownerID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ownerID, id)
	}
	return nil
}

var _ service.ContactService = (*mockContactService)(nil)

var _ = Describe("ContactHandler", func() {
	var (
		router *gin.Engine
		svc    *mockContactService
	)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		req.Header.Set("Authorization", "Bearer t")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		svc = &mockContactService{}
		users := &mockUserStore{
			getByTokenFn: func(_ context.Context, _ string) (*model.User, error) {
				return &model.User{ID: 7}, nil
			},
		}

		router = gin.New()
		h := handler.NewContactHandler(svc)
		rg := router.Group("/api/v1/contacts")
		rg.Use(middleware.RequireAuth(users))
		rg.GET("", h.List)
		rg.GET("/:id", h.Get)
		rg.POST("", h.Create)
		rg.PUT("/:id", h.Update)
		rg.DELETE("/:id", h.Delete)
	})

	It("lists the owner's contacts with search and limit", func() {
		svc.listFn = func(_ context.Context, ownerID int64, opts store.ListOptions) ([]model.Contact, error) {
			Expect(ownerID).To(Equal(int64(7)))
			Expect(opts.Search).To(Equal("marie"))
			Expect(opts.Limit).To(Equal(int32(5)))
			return []model.Contact{{ID: 1, FirstName: "Marie", Email: "marie@labo.fr", Status: "lead"}}, nil
		}

		w := do(http.MethodGet, "/api/v1/contacts?search=marie&limit=5", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(1))
		Expect(resp[0]["first_name"]).To(Equal("Marie"))
	})

	It("creates a contact scoped to the owner", func() {
		var captured *model.Contact
		svc.createFn = func(_ context.Context, contact *model.Contact) (*model.Contact, error) {
			captured = contact
			contact.ID = 99
			return contact, nil
		}

		w := do(http.MethodPost, "/api/v1/contacts", `{"first_name": "Marie", "last_name": "Curie", "email": "marie@labo.fr"}`)

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(captured.OwnerID).To(Equal(int64(7)))
	})

	It("rejects an invalid email", func() {
		w := do(http.MethodPost, "/api/v1/contacts", `{"first_name": "Marie", "email": "not-an-email"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 404 for a contact belonging to another owner", func() {
		w := do(http.MethodGet, "/api/v1/contacts/123", "")

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring("Ressource introuvable"))
	})

	It("rejects a non-numeric id", func() {
		w := do(http.MethodDelete, "/api/v1/contacts/abc", "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("deletes and returns no content", func() {
		var deletedID int64
		svc.deleteFn = func(_ context.Context, _ int64, id int64) error {
			deletedID = id
			return nil
		}

		w := do(http.MethodDelete, "/api/v1/contacts/42", "")

		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(deletedID).To(Equal(int64(42)))
	})
})
