package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"zalestorm.app/crm/common/llm"
	"zalestorm.app/crm/internal/prompt"
)

// ErrNoDeals is returned when a prediction is requested over an empty list.
var ErrNoDeals = errors.New("no deals to analyze")

// predictionTemperature keeps the analysis output stable across runs.
var predictionTemperature = llm.Temp(0.3)

// DealForecast is the per-deal prediction returned by the model.
type DealForecast struct {
	DealID               json.Number `json:"dealId"`
	DealName             string      `json:"dealName"`
	Company              string      `json:"company"`
	CurrentProbability   float64     `json:"currentProbability"`
	PredictedProbability float64     `json:"predictedProbability"`
	Confidence           float64     `json:"confidence"`
	Trend                string      `json:"trend" jsonschema:"enum=up,enum=down,enum=stable"`
	RiskFactors          []string    `json:"riskFactors"`
	Opportunities        []string    `json:"opportunities"`
	Recommendation       string      `json:"recommendation"`
	ExpectedCloseDate    string      `json:"expectedCloseDate"`
	PredictedValue       float64     `json:"predictedValue"`
}

// ForecastSummary aggregates the pipeline-level outlook.
type ForecastSummary struct {
	TotalPipelineValue    float64 `json:"totalPipelineValue"`
	WeightedPipelineValue float64 `json:"weightedPipelineValue"`
	HighConfidenceDeals   int     `json:"highConfidenceDeals"`
	AtRiskDeals           int     `json:"atRiskDeals"`
	TopOpportunity        string  `json:"topOpportunity"`
}

// PredictionReport is the full response of the prediction endpoint.
type PredictionReport struct {
	Predictions []DealForecast  `json:"predictions"`
	Summary     ForecastSummary `json:"summary"`
}

// PredictionService runs the pipeline-forecast analysis over a deal list.
type PredictionService interface {
	Predict(ctx context.Context, deals []json.RawMessage) (*PredictionReport, error)
}

type predictionService struct {
	gateway llm.Client
}

func NewPredictionService(gateway llm.Client) PredictionService {
	return &predictionService{gateway: gateway}
}

func (s *predictionService) Predict(ctx context.Context, deals []json.RawMessage) (*PredictionReport, error) {
	if len(deals) == 0 {
		return nil, ErrNoDeals
	}

	dealsJSON, err := json.MarshalIndent(deals, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding deals: %w", err)
	}

	p := prompt.DealPrediction(string(dealsJSON))
	text, err := s.gateway.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: p.System},
			{Role: llm.RoleUser, Content: p.User},
		},
		SchemaName:  "deal_predictions",
		Schema:      llm.GenerateSchema[PredictionReport](),
		Temperature: predictionTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("predicting deals: %w", err)
	}

	// Unlike the assistant actions there is no text fallback here: the
	// response is either a valid report or an error.
	var report PredictionReport
	if err := json.Unmarshal([]byte(stripFences(text)), &report); err != nil {
		return nil, fmt.Errorf("parsing prediction response: %w", err)
	}
	return &report, nil
}
