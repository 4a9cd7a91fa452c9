package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"zalestorm.app/crm/core/db"
	"zalestorm.app/crm/internal/model"
)

type userStore struct {
	db db.DBTX
}

// NewUserStore creates a new user store
func NewUserStore(dbtx db.DBTX) UserStore {
	return &userStore{db: dbtx}
}

func (s *userStore) GetByToken(ctx context.Context, token string) (*model.User, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, email, name, api_token, created_at
		FROM users
		WHERE api_token = $1
	`, token)
	if err != nil {
		return nil, fmt.Errorf("query user by token: %w", err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}
