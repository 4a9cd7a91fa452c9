package service

import (
	"context"
	"fmt"

	"zalestorm.app/crm/internal/model"
	"zalestorm.app/crm/internal/store"
)

// DashboardStats feeds the dashboard widgets: headline counts, pipeline value
// per stage and the historical win rate.
type DashboardStats struct {
	Contacts      int64              `json:"contacts"`
	Deals         int64              `json:"deals"`
	Activities    int64              `json:"activities"`
	Pipeline      []model.StageValue `json:"pipeline"`
	PipelineValue float64            `json:"pipelineValue"`
	WinRate       float64            `json:"winRate"`
}

type DashboardService interface {
	Stats(ctx context.Context, ownerID int64) (*DashboardStats, error)
}

type dashboardService struct {
	contactStore  store.ContactStore
	dealStore     store.DealStore
	activityStore store.ActivityStore
}

func NewDashboardService(contacts store.ContactStore, deals store.DealStore, activities store.ActivityStore) DashboardService {
	return &dashboardService{
		contactStore:  contacts,
		dealStore:     deals,
		activityStore: activities,
	}
}

func (s *dashboardService) Stats(ctx context.Context, ownerID int64) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.Contacts, err = s.contactStore.Count(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("counting contacts: %w", err)
	}
	if stats.Deals, err = s.dealStore.Count(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("counting deals: %w", err)
	}
	if stats.Activities, err = s.activityStore.Count(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("counting activities: %w", err)
	}

	pipeline, err := s.dealStore.PipelineByStage(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("aggregating pipeline: %w", err)
	}
	stats.Pipeline = pipeline

	var won, lost int64
	for _, stage := range pipeline {
		switch stage.Stage {
		case model.DealStageWon:
			won = stage.Count
		case model.DealStageLost:
			lost = stage.Count
		default:
			// Open stages make up the pipeline value; closed ones don't.
			stats.PipelineValue += stage.Value
		}
	}
	if won+lost > 0 {
		stats.WinRate = float64(won) / float64(won+lost)
	}

	return stats, nil
}
