package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"zalestorm.app/crm/core/db"
	"zalestorm.app/crm/internal/model"
)

const activityColumns = `id, owner_id, type, subject, description, contact_id,
	deal_id, due_date, completed, created_at`

type activityStore struct {
	db db.DBTX
}

// NewActivityStore creates a new activity store
func NewActivityStore(dbtx db.DBTX) ActivityStore {
	return &activityStore{db: dbtx}
}

func (s *activityStore) List(ctx context.Context, ownerID int64, opts ListOptions) ([]model.Activity, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+activityColumns+`
		FROM activities
		WHERE owner_id = $1
		  AND ($2 = '' OR description ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`, ownerID, opts.Search, limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	activities, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Activity])
	if err != nil {
		return nil, fmt.Errorf("scan activities: %w", err)
	}
	return activities, nil
}

func (s *activityStore) Create(ctx context.Context, activity *model.Activity) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO activities (id, owner_id, type, subject, description,
			contact_id, deal_id, due_date, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, activity.ID, activity.OwnerID, activity.Type, activity.Subject, activity.Description,
		activity.ContactID, activity.DealID, activity.DueDate, activity.Completed)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (s *activityStore) Delete(ctx context.Context, ownerID, id int64) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM activities WHERE owner_id = $1 AND id = $2
	`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *activityStore) Count(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx, `
		SELECT count(*) FROM activities WHERE owner_id = $1
	`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}
	return count, nil
}
