package service

import (
	"context"
	"fmt"
	"log/slog"

	"zalestorm.app/crm/common/id"
	"zalestorm.app/crm/internal/model"
	"zalestorm.app/crm/internal/store"
)

type ActivityService interface {
	List(ctx context.Context, ownerID int64, opts store.ListOptions) ([]model.Activity, error)
	Create(ctx context.Context, activity *model.Activity) (*model.Activity, error)
	Delete(ctx context.Context, ownerID, activityID int64) error
}

type activityService struct {
	activityStore store.ActivityStore
}

func NewActivityService(activities store.ActivityStore) ActivityService {
	return &activityService{activityStore: activities}
}

func (s *activityService) List(ctx context.Context, ownerID int64, opts store.ListOptions) ([]model.Activity, error) {
	activities, err := s.activityStore.List(ctx, ownerID, opts)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	return activities, nil
}

func (s *activityService) Create(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	activity.ID = id.New()
	if activity.Type == "" {
		activity.Type = model.ActivityTypeNote
	}

	if err := s.activityStore.Create(ctx, activity); err != nil {
		slog.ErrorContext(ctx, "failed to create activity", "error", err, "owner_id", activity.OwnerID)
		return nil, fmt.Errorf("creating activity: %w", err)
	}
	return activity, nil
}

func (s *activityService) Delete(ctx context.Context, ownerID, activityID int64) error {
	return s.activityStore.Delete(ctx, ownerID, activityID)
}
