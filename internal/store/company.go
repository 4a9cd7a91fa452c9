package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"zalestorm.app/crm/core/db"
	"zalestorm.app/crm/internal/model"
)

const companyColumns = `id, owner_id, name, industry, website, created_at, updated_at`

type companyStore struct {
	db db.DBTX
}

// NewCompanyStore creates a new company store
func NewCompanyStore(dbtx db.DBTX) CompanyStore {
	return &companyStore{db: dbtx}
}

func (s *companyStore) List(ctx context.Context, ownerID int64, opts ListOptions) ([]model.Company, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+companyColumns+`
		FROM companies
		WHERE owner_id = $1
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%')
		ORDER BY name
		LIMIT $3 OFFSET $4
	`, ownerID, opts.Search, limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	companies, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Company])
	if err != nil {
		return nil, fmt.Errorf("scan companies: %w", err)
	}
	return companies, nil
}

func (s *companyStore) GetByID(ctx context.Context, ownerID, id int64) (*model.Company, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+companyColumns+`
		FROM companies
		WHERE owner_id = $1 AND id = $2
	`, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("query company: %w", err)
	}
	company, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan company: %w", err)
	}
	return &company, nil
}

func (s *companyStore) Create(ctx context.Context, company *model.Company) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO companies (id, owner_id, name, industry, website)
		VALUES ($1, $2, $3, $4, $5)
	`, company.ID, company.OwnerID, company.Name, company.Industry, company.Website)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

func (s *companyStore) Update(ctx context.Context, company *model.Company) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE companies
		SET name = $3, industry = $4, website = $5, updated_at = now()
		WHERE owner_id = $1 AND id = $2
	`, company.OwnerID, company.ID, company.Name, company.Industry, company.Website)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *companyStore) Delete(ctx context.Context, ownerID, id int64) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM companies WHERE owner_id = $1 AND id = $2
	`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *companyStore) Count(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx, `
		SELECT count(*) FROM companies WHERE owner_id = $1
	`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}
	return count, nil
}
