package service

import (
	"net/http"
	"time"

	"zalestorm.app/crm/common/llm"
	"zalestorm.app/crm/core/config"
	"zalestorm.app/crm/internal/store"
)

type Services struct {
	stores     *store.Stores
	gateway    llm.Client
	httpClient *http.Client
	companyCfg config.CompanyAPIConfig
}

func NewServices(stores *store.Stores, gateway llm.Client, httpClient *http.Client, companyCfg config.CompanyAPIConfig) *Services {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Services{
		stores:     stores,
		gateway:    gateway,
		httpClient: httpClient,
		companyCfg: companyCfg,
	}
}

func (s *Services) Assistant() AssistantService {
	return NewAssistantService(s.gateway, s.stores.Contacts(), s.stores.Deals(), s.stores.Activities())
}

func (s *Services) Predictions() PredictionService {
	return NewPredictionService(s.gateway)
}

func (s *Services) Sync() SyncService {
	return NewSyncService(s.httpClient, s.stores.Contacts(), s.stores.Deals(), s.stores.Activities(), s.companyCfg)
}

func (s *Services) Contacts() ContactService {
	return NewContactService(s.stores.Contacts())
}

func (s *Services) Companies() CompanyService {
	return NewCompanyService(s.stores.Companies())
}

func (s *Services) Deals() DealService {
	return NewDealService(s.stores.Deals())
}

func (s *Services) Activities() ActivityService {
	return NewActivityService(s.stores.Activities())
}

func (s *Services) Dashboard() DashboardService {
	return NewDashboardService(s.stores.Contacts(), s.stores.Deals(), s.stores.Activities())
}
