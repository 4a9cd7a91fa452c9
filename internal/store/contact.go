package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"zalestorm.app/crm/core/db"
	"zalestorm.app/crm/internal/model"
)

const defaultListLimit = 100

const contactColumns = `id, owner_id, first_name, last_name, email, phone, position,
	company_id, status, external_id, created_at, updated_at`

type contactStore struct {
	db db.DBTX
}

// NewContactStore creates a new contact store
func NewContactStore(dbtx db.DBTX) ContactStore {
	return &contactStore{db: dbtx}
}

func (s *contactStore) List(ctx context.Context, ownerID int64, opts ListOptions) ([]model.Contact, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+contactColumns+`
		FROM contacts
		WHERE owner_id = $1
		  AND ($2 = '' OR first_name ILIKE '%' || $2 || '%'
		       OR last_name ILIKE '%' || $2 || '%'
		       OR email ILIKE '%' || $2 || '%')
		ORDER BY updated_at DESC
		LIMIT $3 OFFSET $4
	`, ownerID, opts.Search, limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	contacts, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Contact])
	if err != nil {
		return nil, fmt.Errorf("scan contacts: %w", err)
	}
	return contacts, nil
}

func (s *contactStore) GetByID(ctx context.Context, ownerID, id int64) (*model.Contact, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+contactColumns+`
		FROM contacts
		WHERE owner_id = $1 AND id = $2
	`, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("query contact: %w", err)
	}
	contact, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Contact])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan contact: %w", err)
	}
	return &contact, nil
}

func (s *contactStore) Create(ctx context.Context, contact *model.Contact) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO contacts (id, owner_id, first_name, last_name, email, phone,
			position, company_id, status, external_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, contact.ID, contact.OwnerID, contact.FirstName, contact.LastName, contact.Email,
		contact.Phone, contact.Position, contact.CompanyID, contact.Status, contact.ExternalID)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (s *contactStore) Update(ctx context.Context, contact *model.Contact) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE contacts
		SET first_name = $3, last_name = $4, email = $5, phone = $6, position = $7,
			company_id = $8, status = $9, updated_at = now()
		WHERE owner_id = $1 AND id = $2
	`, contact.OwnerID, contact.ID, contact.FirstName, contact.LastName, contact.Email,
		contact.Phone, contact.Position, contact.CompanyID, contact.Status)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *contactStore) Delete(ctx context.Context, ownerID, id int64) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM contacts WHERE owner_id = $1 AND id = $2
	`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *contactStore) Upsert(ctx context.Context, contact *model.Contact) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO contacts (id, owner_id, first_name, last_name, email, phone,
			position, company_id, status, external_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (owner_id, email) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone = EXCLUDED.phone,
			position = EXCLUDED.position,
			company_id = EXCLUDED.company_id,
			status = EXCLUDED.status,
			external_id = EXCLUDED.external_id,
			updated_at = now()
	`, contact.ID, contact.OwnerID, contact.FirstName, contact.LastName, contact.Email,
		contact.Phone, contact.Position, contact.CompanyID, contact.Status, contact.ExternalID)
	if err != nil {
		return fmt.Errorf("upsert contact: %w", err)
	}
	return nil
}

func (s *contactStore) Count(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx, `
		SELECT count(*) FROM contacts WHERE owner_id = $1
	`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return count, nil
}
