package mapper

import (
	"fmt"

	"zalestorm.app/crm/internal/model"
)

// Candidate source keys per target field, first match wins.
var (
	contactFirstName  = []string{"firstName", "first_name", "prenom"}
	contactLastName   = []string{"lastName", "last_name", "nom"}
	contactEmail      = []string{"email"}
	contactPhone      = []string{"phone", "telephone"}
	contactCompanyID  = []string{"companyId", "company_id"}
	contactPosition   = []string{"position", "poste"}
	contactExternalID = []string{"id", "externalId"}
)

type ContactMapper struct{}

func NewContactMapper() *ContactMapper {
	return &ContactMapper{}
}

// Map resolves a third-party contact record into the internal shape. A record
// carrying neither an email nor an external identifier cannot be upserted
// idempotently and is rejected.
func (m *ContactMapper) Map(record map[string]any) (*model.Contact, error) {
	contact := &model.Contact{
		FirstName:  stringField(record, contactFirstName),
		LastName:   stringField(record, contactLastName),
		Email:      stringField(record, contactEmail),
		Phone:      optionalString(record, contactPhone),
		CompanyID:  int64Field(record, contactCompanyID),
		Position:   optionalString(record, contactPosition),
		ExternalID: idField(record, contactExternalID),
		Status:     model.ContactStatusLead,
	}

	if contact.Email == "" && contact.ExternalID == nil {
		return nil, fmt.Errorf("contact has neither email nor external id")
	}

	return contact, nil
}
