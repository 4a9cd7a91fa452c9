package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"zalestorm.app/crm/common/id"
	"zalestorm.app/crm/common/logger"
	"zalestorm.app/crm/core/config"
	"zalestorm.app/crm/internal/mapper"
	"zalestorm.app/crm/internal/store"
)

// Sync data types, in the order sync_all processes them.
const (
	DataTypeContacts   = "contacts"
	DataTypeDeals      = "deals"
	DataTypeActivities = "activities"
)

var syncAllOrder = []string{DataTypeContacts, DataTypeDeals, DataTypeActivities}

// ErrInvalidDataType is returned for a sync_data request naming an unknown type.
var ErrInvalidDataType = errors.New("unknown data type")

// SyncConfig is the per-request connection config for the third-party API.
// Zero-value fields fall back to the deployment defaults.
type SyncConfig struct {
	BaseURL   string            `json:"apiUrl"`
	APIKey    string            `json:"apiKey"`
	AuthType  string            `json:"authType"`
	Endpoints map[string]string `json:"endpoints"`
}

// SyncResult reports one data type's batch outcome. Per-record failures land
// in Errors while the batch keeps going.
type SyncResult struct {
	SyncedCount int      `json:"syncedCount"`
	TotalCount  int      `json:"totalCount"`
	Errors      []string `json:"errors"`
}

// ConfigStatus is the masked view of the deployment's default API config.
type ConfigStatus struct {
	Configured bool   `json:"configured"`
	BaseURL    string `json:"baseUrl,omitempty"`
}

// SyncService imports contacts, deals and activities from a configurable
// third-party API into the owner's CRM data.
type SyncService interface {
	TestConnection(ctx context.Context, cfg SyncConfig) error
	Sync(ctx context.Context, ownerID int64, dataType string, cfg SyncConfig) (*SyncResult, error)
	// SyncAll imports contacts, then deals, then activities, strictly in
	// that order. A failed type contributes its error and the run continues.
	SyncAll(ctx context.Context, ownerID int64, cfg SyncConfig) (map[string]*SyncResult, error)
	GetConfig() ConfigStatus
}

type syncService struct {
	httpClient    *http.Client
	contactStore  store.ContactStore
	dealStore     store.DealStore
	activityStore store.ActivityStore
	defaults      config.CompanyAPIConfig

	contactMapper  *mapper.ContactMapper
	dealMapper     *mapper.DealMapper
	activityMapper *mapper.ActivityMapper
}

func NewSyncService(httpClient *http.Client, contacts store.ContactStore, deals store.DealStore, activities store.ActivityStore, defaults config.CompanyAPIConfig) SyncService {
	return &syncService{
		httpClient:     httpClient,
		contactStore:   contacts,
		dealStore:      deals,
		activityStore:  activities,
		defaults:       defaults,
		contactMapper:  mapper.NewContactMapper(),
		dealMapper:     mapper.NewDealMapper(),
		activityMapper: mapper.NewActivityMapper(),
	}
}

func (s *syncService) TestConnection(ctx context.Context, cfg SyncConfig) error {
	cfg = s.withDefaults(cfg)
	if cfg.BaseURL == "" {
		return errors.New("no API URL configured")
	}

	resp, err := s.get(ctx, cfg, cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("connecting to API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("API responded with status %d", resp.StatusCode)
	}
	return nil
}

func (s *syncService) Sync(ctx context.Context, ownerID int64, dataType string, cfg SyncConfig) (*SyncResult, error) {
	cfg = s.withDefaults(cfg)
	if cfg.BaseURL == "" {
		return nil, errors.New("no API URL configured")
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		OwnerID:  logger.Ptr(ownerID),
		DataType: logger.Ptr(dataType),
	})

	records, err := s.fetchRecords(ctx, cfg, dataType)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{TotalCount: len(records), Errors: []string{}}
	for i, record := range records {
		if err := s.importRecord(ctx, ownerID, dataType, record); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("record %d: %v", i, err))
			continue
		}
		result.SyncedCount++
	}

	slog.InfoContext(ctx, "sync batch finished",
		"synced", result.SyncedCount,
		"total", result.TotalCount,
		"failed", len(result.Errors),
	)
	return result, nil
}

func (s *syncService) SyncAll(ctx context.Context, ownerID int64, cfg SyncConfig) (map[string]*SyncResult, error) {
	results := make(map[string]*SyncResult, len(syncAllOrder))
	for _, dataType := range syncAllOrder {
		result, err := s.Sync(ctx, ownerID, dataType, cfg)
		if err != nil {
			// The whole type failed (unreachable, bad payload): record
			// it as an aggregate error and move on to the next type.
			results[dataType] = &SyncResult{Errors: []string{err.Error()}}
			continue
		}
		results[dataType] = result
	}
	return results, nil
}

func (s *syncService) GetConfig() ConfigStatus {
	if !s.defaults.Configured() {
		return ConfigStatus{}
	}
	return ConfigStatus{Configured: true, BaseURL: maskURL(s.defaults.BaseURL)}
}

func (s *syncService) withDefaults(cfg SyncConfig) SyncConfig {
	if cfg.BaseURL == "" {
		cfg.BaseURL = s.defaults.BaseURL
	}
	if cfg.APIKey == "" {
		cfg.APIKey = s.defaults.APIKey
	}
	if cfg.AuthType == "" {
		cfg.AuthType = s.defaults.AuthType
	}
	return cfg
}

func (s *syncService) fetchRecords(ctx context.Context, cfg SyncConfig, dataType string) ([]map[string]any, error) {
	switch dataType {
	case DataTypeContacts, DataTypeDeals, DataTypeActivities:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDataType, dataType)
	}

	endpoint := "/" + dataType
	if custom, ok := cfg.Endpoints[dataType]; ok && custom != "" {
		endpoint = custom
	}

	resp, err := s.get(ctx, cfg, strings.TrimSuffix(cfg.BaseURL, "/")+endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", dataType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: API responded with status %d", dataType, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", dataType, err)
	}

	var records []map[string]any
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("parsing %s response: expected a JSON array: %w", dataType, err)
	}
	return records, nil
}

func (s *syncService) importRecord(ctx context.Context, ownerID int64, dataType string, record map[string]any) error {
	switch dataType {
	case DataTypeContacts:
		contact, err := s.contactMapper.Map(record)
		if err != nil {
			return err
		}
		contact.ID = id.New()
		contact.OwnerID = ownerID
		return s.contactStore.Upsert(ctx, contact)
	case DataTypeDeals:
		deal, err := s.dealMapper.Map(record)
		if err != nil {
			return err
		}
		deal.ID = id.New()
		deal.OwnerID = ownerID
		return s.dealStore.Upsert(ctx, deal)
	case DataTypeActivities:
		activity, err := s.activityMapper.Map(record)
		if err != nil {
			return err
		}
		activity.ID = id.New()
		activity.OwnerID = ownerID
		return s.activityStore.Create(ctx, activity)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDataType, dataType)
	}
}

func (s *syncService) get(ctx context.Context, cfg SyncConfig, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	applyAuth(req, cfg)
	return s.httpClient.Do(req)
}

// applyAuth sets the request credentials for the configured scheme. An
// unknown or empty scheme sends no credentials.
func applyAuth(req *http.Request, cfg SyncConfig) {
	if cfg.APIKey == "" {
		return
	}
	switch cfg.AuthType {
	case "bearer":
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	case "api-key":
		req.Header.Set("X-API-Key", cfg.APIKey)
	case "basic":
		req.Header.Set("Authorization", "Basic "+cfg.APIKey)
	}
}

// maskURL hides everything but the host of the configured base URL.
func maskURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "***"
	}
	return u.Scheme + "://" + u.Host + "/***"
}
