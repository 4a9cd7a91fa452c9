package dto

import (
	"time"

	"zalestorm.app/crm/internal/model"
)

type CreateCompanyRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Industry *string `json:"industry,omitempty" binding:"omitempty,max=255"`
	Website  *string `json:"website,omitempty" binding:"omitempty,url,max=2048"`
}

type UpdateCompanyRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Industry *string `json:"industry,omitempty" binding:"omitempty,max=255"`
	Website  *string `json:"website,omitempty" binding:"omitempty,url,max=2048"`
}

type CompanyResponse struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	Industry  *string   `json:"industry,omitempty"`
	Website   *string   `json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToCompanyResponse(c *model.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Industry:  c.Industry,
		Website:   c.Website,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToCompanyResponses(companies []model.Company) []*CompanyResponse {
	out := make([]*CompanyResponse, len(companies))
	for i := range companies {
		out[i] = ToCompanyResponse(&companies[i])
	}
	return out
}
