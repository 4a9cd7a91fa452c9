package model

import "time"

type User struct {
	CreatedAt time.Time `db:"created_at"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	APIToken  string    `db:"api_token"`
	ID        int64     `db:"id"`
}
