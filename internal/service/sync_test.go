package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"zalestorm.app/crm/common/id"
	"zalestorm.app/crm/core/config"
	"zalestorm.app/crm/internal/model"
	"zalestorm.app/crm/internal/service"
)

var _ = Describe("SyncService", func() {
	var (
		ctx       context.Context
		contacts  *mockContactStore
		deals     *mockDealStore
		activites *mockActivityStore
	)

	newService := func(defaults config.CompanyAPIConfig) service.SyncService {
		return service.NewSyncService(http.DefaultClient, contacts, deals, activites, defaults)
	}

	BeforeEach(func() {
		ctx = context.Background()
		contacts = &mockContactStore{}
		deals = &mockDealStore{}
		activites = &mockActivityStore{}

		Expect(id.Init(1)).To(Succeed())
	})

	Describe("TestConnection", func() {
		It("succeeds on any 2xx and sends the bearer credential", func() {
			var gotAuth string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				w.WriteHeader(http.StatusNoContent)
			}))
			defer server.Close()

			err := newService(config.CompanyAPIConfig{}).TestConnection(ctx, service.SyncConfig{
				BaseURL:  server.URL,
				APIKey:   "s3cret",
				AuthType: "bearer",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(gotAuth).To(Equal("Bearer s3cret"))
		})

		It("uses the X-API-Key header for the api-key scheme", func() {
			var gotKey string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotKey = r.Header.Get("X-API-Key")
			}))
			defer server.Close()

			err := newService(config.CompanyAPIConfig{}).TestConnection(ctx, service.SyncConfig{
				BaseURL:  server.URL,
				APIKey:   "s3cret",
				AuthType: "api-key",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(gotKey).To(Equal("s3cret"))
		})

		It("fails on a non-2xx status", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			}))
			defer server.Close()

			err := newService(config.CompanyAPIConfig{}).TestConnection(ctx, service.SyncConfig{BaseURL: server.URL})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("403"))
		})

		It("fails when no URL is configured anywhere", func() {
			err := newService(config.CompanyAPIConfig{}).TestConnection(ctx, service.SyncConfig{})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Sync", func() {
		It("maps and upserts each contact record", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/contacts"))
				w.Write([]byte(`[
					{"firstName": "Marie", "lastName": "Curie", "email": "marie@labo.fr", "companyId": 42},
					{"prenom": "Louis", "nom": "Pasteur", "email": "louis@labo.fr"}
				]`))
			}))
			defer server.Close()

			var upserted []model.Contact
			contacts.upsertFn = func(_ context.Context, c *model.Contact) error {
				upserted = append(upserted, *c)
				return nil
			}

			result, err := newService(config.CompanyAPIConfig{}).Sync(ctx, 7, service.DataTypeContacts, service.SyncConfig{BaseURL: server.URL})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.SyncedCount).To(Equal(2))
			Expect(result.TotalCount).To(Equal(2))
			Expect(result.Errors).To(BeEmpty())
			Expect(upserted[0].FirstName).To(Equal("Marie"))
			Expect(upserted[0].OwnerID).To(Equal(int64(7)))
			Expect(upserted[0].CompanyID).To(HaveValue(Equal(int64(42))))
			Expect(upserted[1].FirstName).To(Equal("Louis"))
			Expect(upserted[1].CompanyID).To(BeNil())
		})

		It("isolates per-record failures and keeps the batch going", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`[
					{"email": "a@x.fr"},
					{"note": "ni email ni id"},
					{"email": "b@x.fr"},
					{"email": "c@x.fr"},
					{"email": "d@x.fr"}
				]`))
			}))
			defer server.Close()

			result, err := newService(config.CompanyAPIConfig{}).Sync(ctx, 7, service.DataTypeContacts, service.SyncConfig{BaseURL: server.URL})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.TotalCount).To(Equal(5))
			Expect(result.SyncedCount).To(Equal(4))
			Expect(result.Errors).To(HaveLen(1))
			Expect(result.Errors[0]).To(ContainSubstring("record 1"))
		})

		It("uses a configured custom endpoint", func() {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Write([]byte(`[]`))
			}))
			defer server.Close()

			_, err := newService(config.CompanyAPIConfig{}).Sync(ctx, 7, service.DataTypeDeals, service.SyncConfig{
				BaseURL:   server.URL,
				Endpoints: map[string]string{"deals": "/v2/opportunities"},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(gotPath).To(Equal("/v2/opportunities"))
		})

		It("returns an aggregate error for a non-array payload", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`{"items": []}`))
			}))
			defer server.Close()

			_, err := newService(config.CompanyAPIConfig{}).Sync(ctx, 7, service.DataTypeContacts, service.SyncConfig{BaseURL: server.URL})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("expected a JSON array"))
		})

		It("rejects an unknown data type before any request", func() {
			_, err := newService(config.CompanyAPIConfig{BaseURL: "http://unused.test"}).Sync(ctx, 7, "invoices", service.SyncConfig{})
			Expect(err).To(MatchError(ContainSubstring("unknown data type")))
		})

		It("inserts activities instead of upserting", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`[{"type": "call", "description": "Appel de suivi"}]`))
			}))
			defer server.Close()

			var created []model.Activity
			activites.createFn = func(_ context.Context, a *model.Activity) error {
				created = append(created, *a)
				return nil
			}

			result, err := newService(config.CompanyAPIConfig{}).Sync(ctx, 7, service.DataTypeActivities, service.SyncConfig{BaseURL: server.URL})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.SyncedCount).To(Equal(1))
			Expect(created[0].Type).To(Equal("call"))
			Expect(created[0].Description).To(Equal("Appel de suivi"))
		})
	})

	Describe("SyncAll", func() {
		It("processes contacts, then deals, then activities", func() {
			var mu sync.Mutex
			var order []string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				mu.Lock()
				order = append(order, r.URL.Path)
				mu.Unlock()
				w.Write([]byte(`[]`))
			}))
			defer server.Close()

			results, err := newService(config.CompanyAPIConfig{}).SyncAll(ctx, 7, service.SyncConfig{BaseURL: server.URL})

			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(3))
			Expect(order).To(Equal([]string{"/contacts", "/deals", "/activities"}))
		})

		It("keeps going when one type fails outright", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/deals" {
					w.WriteHeader(http.StatusBadGateway)
					return
				}
				w.Write([]byte(`[]`))
			}))
			defer server.Close()

			results, err := newService(config.CompanyAPIConfig{}).SyncAll(ctx, 7, service.SyncConfig{BaseURL: server.URL})

			Expect(err).NotTo(HaveOccurred())
			Expect(results[service.DataTypeDeals].Errors).NotTo(BeEmpty())
			Expect(results[service.DataTypeContacts].Errors).To(BeEmpty())
			Expect(results[service.DataTypeActivities].Errors).To(BeEmpty())
		})
	})

	Describe("GetConfig", func() {
		It("reports unconfigured defaults", func() {
			status := newService(config.CompanyAPIConfig{}).GetConfig()
			Expect(status.Configured).To(BeFalse())
			Expect(status.BaseURL).To(BeEmpty())
		})

		It("masks the configured base URL", func() {
			status := newService(config.CompanyAPIConfig{
				BaseURL: "https://api.partner.test/v1/private",
				APIKey:  "k",
			}).GetConfig()

			Expect(status.Configured).To(BeTrue())
			Expect(status.BaseURL).To(Equal("https://api.partner.test/***"))
			Expect(status.BaseURL).NotTo(ContainSubstring("private"))
		})
	})
})
