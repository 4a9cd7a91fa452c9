package mapper

import (
	"fmt"

	"zalestorm.app/crm/internal/model"
)

var (
	dealTitle       = []string{"title", "name", "titre"}
	dealValue       = []string{"value", "amount", "montant"}
	dealStage       = []string{"stage", "status"}
	dealContactID   = []string{"contactId", "contact_id"}
	dealCompanyID   = []string{"companyId", "company_id"}
	dealProbability = []string{"probability", "probabilite"}
	dealCloseDate   = []string{"expectedCloseDate", "expected_close_date"}
	dealExternalID  = []string{"id", "externalId"}
)

type DealMapper struct{}

func NewDealMapper() *DealMapper {
	return &DealMapper{}
}

func (m *DealMapper) Map(record map[string]any) (*model.Deal, error) {
	deal := &model.Deal{
		Title:             stringField(record, dealTitle),
		Value:             numberField(record, dealValue, 0),
		Stage:             stringField(record, dealStage),
		ContactID:         int64Field(record, dealContactID),
		CompanyID:         int64Field(record, dealCompanyID),
		Probability:       intField(record, dealProbability, 50),
		ExpectedCloseDate: timeField(record, dealCloseDate),
		ExternalID:        idField(record, dealExternalID),
	}

	if deal.Stage == "" {
		deal.Stage = model.DealStageLead
	}

	if deal.Title == "" {
		return nil, fmt.Errorf("deal has no title")
	}

	return deal, nil
}
