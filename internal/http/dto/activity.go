package dto

import (
	"time"

	"zalestorm.app/crm/internal/model"
)

type CreateActivityRequest struct {
	Type        string     `json:"type,omitempty" binding:"omitempty,oneof=note call email meeting task"`
	Subject     *string    `json:"subject,omitempty" binding:"omitempty,max=255"`
	Description string     `json:"description" binding:"required,min=1"`
	ContactID   *int64     `json:"contact_id,string,omitempty"`
	DealID      *int64     `json:"deal_id,string,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `json:"completed"`
}

type ActivityResponse struct {
	ID          int64      `json:"id,string"`
	Type        string     `json:"type"`
	Subject     *string    `json:"subject,omitempty"`
	Description string     `json:"description"`
	ContactID   *int64     `json:"contact_id,string,omitempty"`
	DealID      *int64     `json:"deal_id,string,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ToActivityResponse(a *model.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:          a.ID,
		Type:        a.Type,
		Subject:     a.Subject,
		Description: a.Description,
		ContactID:   a.ContactID,
		DealID:      a.DealID,
		DueDate:     a.DueDate,
		Completed:   a.Completed,
		CreatedAt:   a.CreatedAt,
	}
}

func ToActivityResponses(activities []model.Activity) []*ActivityResponse {
	out := make([]*ActivityResponse, len(activities))
	for i := range activities {
		out[i] = ToActivityResponse(&activities[i])
	}
	return out
}
