package store

import (
	"context"
	"errors"

	"zalestorm.app/crm/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ListOptions bounds list queries. Limit is always enforced; a zero limit
// falls back to the store default.
type ListOptions struct {
	Search string
	Limit  int32
	Offset int32
}

// UserStore resolves API credentials. Token validation is the backend's job:
// an unknown token is simply not found.
type UserStore interface {
	GetByToken(ctx context.Context, token string) (*model.User, error)
}

// ContactStore defines the contract for contact data access. All queries are
// scoped to an owner; a row belonging to another owner behaves as absent.
type ContactStore interface {
	List(ctx context.Context, ownerID int64, opts ListOptions) ([]model.Contact, error)
	GetByID(ctx context.Context, ownerID, id int64) (*model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) error
	Update(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, ownerID, id int64) error
	// Upsert inserts or updates keyed on (owner_id, email).
	Upsert(ctx context.Context, contact *model.Contact) error
	Count(ctx context.Context, ownerID int64) (int64, error)
}

// CompanyStore defines the contract for company data access
type CompanyStore interface {
	List(ctx context.Context, ownerID int64, opts ListOptions) ([]model.Company, error)
	GetByID(ctx context.Context, ownerID, id int64) (*model.Company, error)
	Create(ctx context.Context, company *model.Company) error
	Update(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, ownerID, id int64) error
	Count(ctx context.Context, ownerID int64) (int64, error)
}

// DealStore defines the contract for deal data access
type DealStore interface {
	List(ctx context.Context, ownerID int64, opts ListOptions) ([]model.Deal, error)
	GetByID(ctx context.Context, ownerID, id int64) (*model.Deal, error)
	Create(ctx context.Context, deal *model.Deal) error
	Update(ctx context.Context, deal *model.Deal) error
	Delete(ctx context.Context, ownerID, id int64) error
	// Upsert inserts or updates keyed on (owner_id, external_id).
	Upsert(ctx context.Context, deal *model.Deal) error
	Count(ctx context.Context, ownerID int64) (int64, error)
	// PipelineByStage aggregates open deal count and value per stage.
	PipelineByStage(ctx context.Context, ownerID int64) ([]model.StageValue, error)
}

// ActivityStore defines the contract for activity data access. Activities are
// insert-only from the sync path (no natural external key).
type ActivityStore interface {
	List(ctx context.Context, ownerID int64, opts ListOptions) ([]model.Activity, error)
	Create(ctx context.Context, activity *model.Activity) error
	Delete(ctx context.Context, ownerID, id int64) error
	Count(ctx context.Context, ownerID int64) (int64, error)
}
