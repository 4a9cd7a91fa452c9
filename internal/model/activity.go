package model

import "time"

// Activity types, matching the UI's activity feed.
const (
	ActivityTypeNote    = "note"
	ActivityTypeCall    = "call"
	ActivityTypeEmail   = "email"
	ActivityTypeMeeting = "meeting"
	ActivityTypeTask    = "task"
)

type Activity struct {
	CreatedAt   time.Time  `db:"created_at"`
	Type        string     `db:"type"`
	Description string     `db:"description"`
	Subject     *string    `db:"subject"`
	ContactID   *int64     `db:"contact_id"`
	DealID      *int64     `db:"deal_id"`
	DueDate     *time.Time `db:"due_date"`
	Completed   bool       `db:"completed"`
	ID          int64      `db:"id"`
	OwnerID     int64      `db:"owner_id"`
}
