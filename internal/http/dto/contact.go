package dto

import (
	"time"

	"zalestorm.app/crm/internal/model"
)

type CreateContactRequest struct {
	FirstName string  `json:"first_name" binding:"required,min=1,max=255"`
	LastName  string  `json:"last_name" binding:"max=255"`
	Email     string  `json:"email" binding:"required,email,max=255"`
	Phone     *string `json:"phone,omitempty" binding:"omitempty,max=50"`
	Position  *string `json:"position,omitempty" binding:"omitempty,max=255"`
	CompanyID *int64  `json:"company_id,string,omitempty"`
	Status    string  `json:"status,omitempty" binding:"omitempty,oneof=lead active inactive"`
}

type UpdateContactRequest struct {
	FirstName string  `json:"first_name" binding:"required,min=1,max=255"`
	LastName  string  `json:"last_name" binding:"max=255"`
	Email     string  `json:"email" binding:"required,email,max=255"`
	Phone     *string `json:"phone,omitempty" binding:"omitempty,max=50"`
	Position  *string `json:"position,omitempty" binding:"omitempty,max=255"`
	CompanyID *int64  `json:"company_id,string,omitempty"`
	Status    string  `json:"status" binding:"required,oneof=lead active inactive"`
}

type ContactResponse struct {
	ID         int64     `json:"id,string"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	Position   *string   `json:"position,omitempty"`
	CompanyID  *int64    `json:"company_id,string,omitempty"`
	Status     string    `json:"status"`
	ExternalID *string   `json:"external_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToContactResponse(c *model.Contact) *ContactResponse {
	return &ContactResponse{
		ID:         c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		Position:   c.Position,
		CompanyID:  c.CompanyID,
		Status:     c.Status,
		ExternalID: c.ExternalID,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func ToContactResponses(contacts []model.Contact) []*ContactResponse {
	out := make([]*ContactResponse, len(contacts))
	for i := range contacts {
		out[i] = ToContactResponse(&contacts[i])
	}
	return out
}
