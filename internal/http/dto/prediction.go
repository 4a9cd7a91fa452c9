package dto

import "encoding/json"

// PredictionRequest is the body of POST /api/v1/ai/predictions. Deals are
// forwarded to the analysis as-is; the service validates non-emptiness.
type PredictionRequest struct {
	Deals []json.RawMessage `json:"deals"`
}
