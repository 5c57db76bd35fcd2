package jfkdex

import "fmt"

// APIError is a structured error response from the archive service.
// Callers can use errors.As to extract it:
//
//	var apiErr *jfkdex.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests { ... }
type APIError struct {
	// Code is the machine-readable error code (e.g. "rate_limited").
	Code string `json:"code"`
	// Message is the human-readable description from the service.
	Message string `json:"message"`
	// StatusCode is the HTTP status of the response.
	StatusCode int `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("archive: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}
