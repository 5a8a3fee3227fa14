package entity

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// Input errors
	ErrMissingInput = errors.New("description must not be empty")

	// Workflow errors
	ErrInvalidWorkflowState = errors.New("invalid workflow state")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrNoDocument           = errors.New("requirements document not available")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrUnknownFormat    = errors.New("unsupported export format")
)

// BackendError means the completion backend returned a non-success status.
// The raw response body is carried verbatim as detail.
type BackendError struct {
	StatusCode int
	Body       string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("completion backend returned status %d: %s", e.StatusCode, e.Body)
}

// MalformedResponseError means a JSON-mode response could not be parsed as
// structured data, or the parsed structure failed schema validation.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed backend response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed backend response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
