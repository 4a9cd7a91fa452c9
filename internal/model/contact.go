package model

import "time"

// Contact statuses used by the dashboard filters.
const (
	ContactStatusLead     = "lead"
	ContactStatusActive   = "active"
	ContactStatusInactive = "inactive"
)

type Contact struct {
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	Email      string    `db:"email"`
	Status     string    `db:"status"`
	Phone      *string   `db:"phone"`
	Position   *string   `db:"position"`
	CompanyID  *int64    `db:"company_id"`
	ExternalID *string   `db:"external_id"`
	ID         int64     `db:"id"`
	OwnerID    int64     `db:"owner_id"`
}
