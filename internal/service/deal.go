package service

import (
	"context"
	"fmt"
	"log/slog"

	"zalestorm.app/crm/common/id"
	"zalestorm.app/crm/internal/model"
	"zalestorm.app/crm/internal/store"
)

type DealService interface {
	List(ctx context.Context, ownerID int64, opts store.ListOptions) ([]model.Deal, error)
	Get(ctx context.Context, ownerID, dealID int64) (*model.Deal, error)
	Create(ctx context.Context, deal *model.Deal) (*model.Deal, error)
	Update(ctx context.Context, deal *model.Deal) (*model.Deal, error)
	Delete(ctx context.Context, ownerID, dealID int64) error
}

type dealService struct {
	dealStore store.DealStore
}

func NewDealService(deals store.DealStore) DealService {
	return &dealService{dealStore: deals}
}

func (s *dealService) List(ctx context.Context, ownerID int64, opts store.ListOptions) ([]model.Deal, error) {
	deals, err := s.dealStore.List(ctx, ownerID, opts)
	if err != nil {
		return nil, fmt.Errorf("listing deals: %w", err)
	}
	return deals, nil
}

func (s *dealService) Get(ctx context.Context, ownerID, dealID int64) (*model.Deal, error) {
	return s.dealStore.GetByID(ctx, ownerID, dealID)
}

func (s *dealService) Create(ctx context.Context, deal *model.Deal) (*model.Deal, error) {
	deal.ID = id.New()
	if deal.Stage == "" {
		deal.Stage = model.DealStageLead
	}

	if err := s.dealStore.Create(ctx, deal); err != nil {
		slog.ErrorContext(ctx, "failed to create deal", "error", err, "owner_id", deal.OwnerID)
		return nil, fmt.Errorf("creating deal: %w", err)
	}

	slog.InfoContext(ctx, "deal created", "deal_id", deal.ID, "owner_id", deal.OwnerID)
	return deal, nil
}

func (s *dealService) Update(ctx context.Context, deal *model.Deal) (*model.Deal, error) {
	if err := s.dealStore.Update(ctx, deal); err != nil {
		return nil, err
	}
	return s.dealStore.GetByID(ctx, deal.OwnerID, deal.ID)
}

func (s *dealService) Delete(ctx context.Context, ownerID, dealID int64) error {
	return s.dealStore.Delete(ctx, ownerID, dealID)
}
