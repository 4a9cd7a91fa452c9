package store_test

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"zalestorm.app/crm/internal/model"
	"zalestorm.app/crm/internal/store"
)

type execCall struct {
	sql  string
	args []any
}

// stubDB records Exec statements. Query paths are not exercised here.
type stubDB struct {
	execCalls []execCall
}

func (s *stubDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.execCalls = append(s.execCalls, execCall{sql: sql, args: args})
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (s *stubDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("stubDB: Query not supported")
}

func (s *stubDB) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("stubDB: QueryRow not supported")
}

var _ = Describe("ContactStore", func() {
	Describe("Upsert", func() {
		It("persists the company link on insert and on conflict", func() {
			db := &stubDB{}
			companyID := int64(42)
			contact := &model.Contact{
				ID:        101,
				OwnerID:   7,
				FirstName: "Marie",
				LastName:  "Curie",
				Email:     "marie@labo.fr",
				CompanyID: &companyID,
				Status:    model.ContactStatusLead,
			}

			Expect(store.NewContactStore(db).Upsert(context.Background(), contact)).To(Succeed())

			Expect(db.execCalls).To(HaveLen(1))
			Expect(db.execCalls[0].sql).To(ContainSubstring("company_id"))
			Expect(db.execCalls[0].sql).To(ContainSubstring("company_id = EXCLUDED.company_id"))
			Expect(db.execCalls[0].args).To(ContainElement(&companyID))
		})
	})
})
