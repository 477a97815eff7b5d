// Package errors provides custom error types for the procurement chat client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrNoBaseURL       = errors.New("no base URL configured")
	ErrNoAssistant     = errors.New("no assistant selected")
	ErrInvalidResponse = errors.New("invalid response format")
)

// DirectoryError represents a failure loading the assistant directory.
// It is logged as a diagnostic; the client keeps an empty list.
type DirectoryError struct {
	Message string
}

func (e *DirectoryError) Error() string {
	if e.Message == "" {
		return "failed to load assistants"
	}
	return fmt.Sprintf("failed to load assistants: %s", e.Message)
}

// NewDirectoryError creates a new DirectoryError
func NewDirectoryError(message string) *DirectoryError {
	return &DirectoryError{Message: message}
}

// ExchangeError represents a failed chat exchange (network error, non-2xx
// status, or an undecodable body).
type ExchangeError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *ExchangeError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("exchange failed [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("exchange failed at %s: %s", e.Endpoint, e.Message)
}

// Is allows comparison with sentinel errors
func (e *ExchangeError) Is(target error) bool {
	if target == ErrInvalidResponse && e.StatusCode == 0 {
		return true
	}
	_, ok := target.(*ExchangeError)
	return ok
}

// NewExchangeError creates a new ExchangeError
func NewExchangeError(statusCode int, endpoint, message string) *ExchangeError {
	return &ExchangeError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// GetHTTPStatus extracts the HTTP status from an ExchangeError in the chain,
// or 0 when none is present.
func GetHTTPStatus(err error) int {
	var ee *ExchangeError
	if errors.As(err, &ee) {
		return ee.StatusCode
	}
	return 0
}

// IsDirectoryError reports whether err is a directory load failure.
func IsDirectoryError(err error) bool {
	var de *DirectoryError
	return errors.As(err, &de)
}

// IsExchangeError reports whether err is a chat exchange failure.
func IsExchangeError(err error) bool {
	var ee *ExchangeError
	return errors.As(err, &ee)
}
