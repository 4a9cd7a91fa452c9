package model

import "time"

type Company struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	Name      string    `db:"name"`
	Industry  *string   `db:"industry"`
	Website   *string   `db:"website"`
	ID        int64     `db:"id"`
	OwnerID   int64     `db:"owner_id"`
}
