package dto

import (
	"time"

	"zalestorm.app/crm/internal/model"
)

type CreateDealRequest struct {
	Title             string     `json:"title" binding:"required,min=1,max=255"`
	Value             float64    `json:"value" binding:"gte=0"`
	Stage             string     `json:"stage,omitempty" binding:"omitempty,oneof=lead qualified proposal negotiation won lost"`
	Probability       int        `json:"probability" binding:"gte=0,lte=100"`
	ContactID         *int64     `json:"contact_id,string,omitempty"`
	CompanyID         *int64     `json:"company_id,string,omitempty"`
	ExpectedCloseDate *time.Time `json:"expected_close_date,omitempty"`
}

type UpdateDealRequest struct {
	Title             string     `json:"title" binding:"required,min=1,max=255"`
	Value             float64    `json:"value" binding:"gte=0"`
	Stage             string     `json:"stage" binding:"required,oneof=lead qualified proposal negotiation won lost"`
	Probability       int        `json:"probability" binding:"gte=0,lte=100"`
	ContactID         *int64     `json:"contact_id,string,omitempty"`
	CompanyID         *int64     `json:"company_id,string,omitempty"`
	ExpectedCloseDate *time.Time `json:"expected_close_date,omitempty"`
}

type DealResponse struct {
	ID                int64      `json:"id,string"`
	Title             string     `json:"title"`
	Value             float64    `json:"value"`
	Stage             string     `json:"stage"`
	Probability       int        `json:"probability"`
	ContactID         *int64     `json:"contact_id,string,omitempty"`
	CompanyID         *int64     `json:"company_id,string,omitempty"`
	ExpectedCloseDate *time.Time `json:"expected_close_date,omitempty"`
	ExternalID        *string    `json:"external_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func ToDealResponse(d *model.Deal) *DealResponse {
	return &DealResponse{
		ID:                d.ID,
		Title:             d.Title,
		Value:             d.Value,
		Stage:             d.Stage,
		Probability:       d.Probability,
		ContactID:         d.ContactID,
		CompanyID:         d.CompanyID,
		ExpectedCloseDate: d.ExpectedCloseDate,
		ExternalID:        d.ExternalID,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func ToDealResponses(deals []model.Deal) []*DealResponse {
	out := make([]*DealResponse, len(deals))
	for i := range deals {
		out[i] = ToDealResponse(&deals[i])
	}
	return out
}
