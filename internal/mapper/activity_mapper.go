package mapper

import (
	"zalestorm.app/crm/internal/model"
)

var (
	activityType        = []string{"type"}
	activityDescription = []string{"description", "content"}
	activityContactID   = []string{"contactId", "contact_id"}
	activityDealID      = []string{"dealId", "deal_id"}
	activityDueDate     = []string{"dueDate", "due_date"}
	activityCompleted   = []string{"completed"}
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

// Map resolves a third-party activity record. Activities carry no natural
// external key, so every field is optional and defaults apply; the sync layer
// always inserts.
func (m *ActivityMapper) Map(record map[string]any) (*model.Activity, error) {
	activity := &model.Activity{
		Type:        stringField(record, activityType),
		Description: stringField(record, activityDescription),
		ContactID:   int64Field(record, activityContactID),
		DealID:      int64Field(record, activityDealID),
		DueDate:     timeField(record, activityDueDate),
		Completed:   boolField(record, activityCompleted),
	}

	if activity.Type == "" {
		activity.Type = model.ActivityTypeNote
	}

	return activity, nil
}
