package llm

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
)

// Gateway error taxonomy. HTTP 429 and 402 from the gateway are meaningful to
// callers (user-facing messages differ); everything else non-2xx collapses
// into UpstreamError.
var (
	ErrRateLimited    = errors.New("gateway rate limited")
	ErrQuotaExhausted = errors.New("gateway quota exhausted")
)

// UpstreamError is any other gateway failure, including network errors
// (StatusCode 0).
type UpstreamError struct {
	Err        error
	StatusCode int
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gateway error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("gateway unreachable: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func mapGatewayError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case http.StatusPaymentRequired:
			return fmt.Errorf("%w: %v", ErrQuotaExhausted, err)
		default:
			return &UpstreamError{Err: err, StatusCode: apiErr.StatusCode}
		}
	}
	return &UpstreamError{Err: err}
}
