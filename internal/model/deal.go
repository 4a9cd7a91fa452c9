package model

import "time"

// Pipeline stages, in funnel order.
const (
	DealStageLead        = "lead"
	DealStageQualified   = "qualified"
	DealStageProposal    = "proposal"
	DealStageNegotiation = "negotiation"
	DealStageWon         = "won"
	DealStageLost        = "lost"
)

type Deal struct {
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
	Title             string     `db:"title"`
	Stage             string     `db:"stage"`
	ContactID         *int64     `db:"contact_id"`
	CompanyID         *int64     `db:"company_id"`
	ExpectedCloseDate *time.Time `db:"expected_close_date"`
	ExternalID        *string    `db:"external_id"`
	Value             float64    `db:"value"`
	Probability       int        `db:"probability"`
	ID                int64      `db:"id"`
	OwnerID           int64      `db:"owner_id"`
}

// StageValue is one row of the pipeline-by-stage aggregate.
type StageValue struct {
	Stage string  `db:"stage"`
	Value float64 `db:"value"`
	Count int64   `db:"count"`
}
