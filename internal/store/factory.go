package store

import (
	"zalestorm.app/crm/core/db"
)

type Stores struct {
	db db.DBTX
}

func NewStores(dbtx db.DBTX) *Stores {
	return &Stores{db: dbtx}
}

func (s *Stores) Users() UserStore {
	return NewUserStore(s.db)
}

func (s *Stores) Contacts() ContactStore {
	return NewContactStore(s.db)
}

func (s *Stores) Companies() CompanyStore {
	return NewCompanyStore(s.db)
}

func (s *Stores) Deals() DealStore {
	return NewDealStore(s.db)
}

func (s *Stores) Activities() ActivityStore {
	return NewActivityStore(s.db)
}
