package service

import (
	"context"
	"fmt"
	"log/slog"

	"zalestorm.app/crm/common/id"
	"zalestorm.app/crm/internal/model"
	"zalestorm.app/crm/internal/store"
)

type CompanyService interface {
	List(ctx context.Context, ownerID int64, opts store.ListOptions) ([]model.Company, error)
	Get(ctx context.Context, ownerID, companyID int64) (*model.Company, error)
	Create(ctx context.Context, company *model.Company) (*model.Company, error)
	Update(ctx context.Context, company *model.Company) (*model.Company, error)
	Delete(ctx context.Context, ownerID, companyID int64) error
}

type companyService struct {
	companyStore store.CompanyStore
}

func NewCompanyService(companies store.CompanyStore) CompanyService {
	return &companyService{companyStore: companies}
}

func (s *companyService) List(ctx context.Context, ownerID int64, opts store.ListOptions) ([]model.Company, error) {
	companies, err := s.companyStore.List(ctx, ownerID, opts)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	return companies, nil
}

func (s *companyService) Get(ctx context.Context, ownerID, companyID int64) (*model.Company, error) {
	return s.companyStore.GetByID(ctx, ownerID, companyID)
}

func (s *companyService) Create(ctx context.Context, company *model.Company) (*model.Company, error) {
	company.ID = id.New()

	if err := s.companyStore.Create(ctx, company); err != nil {
		slog.ErrorContext(ctx, "failed to create company", "error", err, "owner_id", company.OwnerID)
		return nil, fmt.Errorf("creating company: %w", err)
	}
	return company, nil
}

func (s *companyService) Update(ctx context.Context, company *model.Company) (*model.Company, error) {
	if err := s.companyStore.Update(ctx, company); err != nil {
		return nil, err
	}
	return s.companyStore.GetByID(ctx, company.OwnerID, company.ID)
}

func (s *companyService) Delete(ctx context.Context, ownerID, companyID int64) error {
	return s.companyStore.Delete(ctx, ownerID, companyID)
}
