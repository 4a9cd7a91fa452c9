package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"zalestorm.app/crm/core/db"
	"zalestorm.app/crm/internal/model"
)

const dealColumns = `id, owner_id, title, value, stage, probability, contact_id,
	company_id, expected_close_date, external_id, created_at, updated_at`

type dealStore struct {
	db db.DBTX
}

// NewDealStore creates a new deal store
func NewDealStore(dbtx db.DBTX) DealStore {
	return &dealStore{db: dbtx}
}

func (s *dealStore) List(ctx context.Context, ownerID int64, opts ListOptions) ([]model.Deal, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+dealColumns+`
		FROM deals
		WHERE owner_id = $1
		  AND ($2 = '' OR title ILIKE '%' || $2 || '%')
		ORDER BY updated_at DESC
		LIMIT $3 OFFSET $4
	`, ownerID, opts.Search, limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	deals, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Deal])
	if err != nil {
		return nil, fmt.Errorf("scan deals: %w", err)
	}
	return deals, nil
}

func (s *dealStore) GetByID(ctx context.Context, ownerID, id int64) (*model.Deal, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+dealColumns+`
		FROM deals
		WHERE owner_id = $1 AND id = $2
	`, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("query deal: %w", err)
	}
	deal, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Deal])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan deal: %w", err)
	}
	return &deal, nil
}

func (s *dealStore) Create(ctx context.Context, deal *model.Deal) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO deals (id, owner_id, title, value, stage, probability,
			contact_id, company_id, expected_close_date, external_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, deal.ID, deal.OwnerID, deal.Title, deal.Value, deal.Stage, deal.Probability,
		deal.ContactID, deal.CompanyID, deal.ExpectedCloseDate, deal.ExternalID)
	if err != nil {
		return fmt.Errorf("insert deal: %w", err)
	}
	return nil
}

func (s *dealStore) Update(ctx context.Context, deal *model.Deal) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE deals
		SET title = $3, value = $4, stage = $5, probability = $6, contact_id = $7,
			company_id = $8, expected_close_date = $9, updated_at = now()
		WHERE owner_id = $1 AND id = $2
	`, deal.OwnerID, deal.ID, deal.Title, deal.Value, deal.Stage, deal.Probability,
		deal.ContactID, deal.CompanyID, deal.ExpectedCloseDate)
	if err != nil {
		return fmt.Errorf("update deal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *dealStore) Delete(ctx context.Context, ownerID, id int64) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM deals WHERE owner_id = $1 AND id = $2
	`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete deal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *dealStore) Upsert(ctx context.Context, deal *model.Deal) error {
	// Deals without an external id cannot collide on the conflict target
	// (NULLs never conflict) and fall through to a plain insert.
	_, err := s.db.Exec(ctx, `
		INSERT INTO deals (id, owner_id, title, value, stage, probability,
			contact_id, company_id, expected_close_date, external_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (owner_id, external_id) DO UPDATE SET
			title = EXCLUDED.title,
			value = EXCLUDED.value,
			stage = EXCLUDED.stage,
			probability = EXCLUDED.probability,
			contact_id = EXCLUDED.contact_id,
			company_id = EXCLUDED.company_id,
			expected_close_date = EXCLUDED.expected_close_date,
			updated_at = now()
	`, deal.ID, deal.OwnerID, deal.Title, deal.Value, deal.Stage, deal.Probability,
		deal.ContactID, deal.CompanyID, deal.ExpectedCloseDate, deal.ExternalID)
	if err != nil {
		return fmt.Errorf("upsert deal: %w", err)
	}
	return nil
}

func (s *dealStore) Count(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx, `
		SELECT count(*) FROM deals WHERE owner_id = $1
	`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count deals: %w", err)
	}
	return count, nil
}

func (s *dealStore) PipelineByStage(ctx context.Context, ownerID int64) ([]model.StageValue, error) {
	rows, err := s.db.Query(ctx, `
		SELECT stage, coalesce(sum(value), 0) AS value, count(*) AS count
		FROM deals
		WHERE owner_id = $1
		GROUP BY stage
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("pipeline by stage: %w", err)
	}
	stages, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.StageValue])
	if err != nil {
		return nil, fmt.Errorf("scan pipeline: %w", err)
	}
	return stages, nil
}
