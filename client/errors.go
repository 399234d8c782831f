package client

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-retryable error response from the PageTree API.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
	RequestID  string `json:"request_id,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("pagetree api error (status %d, %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("pagetree api error (status %d): %s", e.StatusCode, e.Message)
}

// apiErrorResponse is the wire shape of API error bodies.
type apiErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// newAPIError builds an APIError from a response body, falling back to the
// raw body when it is not the standard error envelope.
func newAPIError(statusCode int, body []byte, requestID string) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    string(body),
		RequestID:  requestID,
	}

	var envelope apiErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	}
	return apiErr
}
