package dto

import "zalestorm.app/crm/internal/service"

// Sync actions accepted by the integrations endpoint.
const (
	SyncActionTestConnection = "test_connection"
	SyncActionSyncData       = "sync_data"
	SyncActionSyncAll        = "sync_all"
	SyncActionGetConfig      = "get_config"
)

// SyncRequest is the body of POST /api/v1/integrations/company-api.
type SyncRequest struct {
	Action   string             `json:"action" binding:"required"`
	DataType string             `json:"dataType,omitempty"`
	Config   service.SyncConfig `json:"config,omitempty"`
}
