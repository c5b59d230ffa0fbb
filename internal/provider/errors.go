package provider

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ProviderError is returned for every failed provider call. Status is the HTTP
// status for non-2xx responses and 0 for transport or decoding failures.
// Detail is the provider's {"detail": ...} message, verbatim, when present.
type ProviderError struct {
	Op     string
	Status int
	Detail string
	Cause  error
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Status > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.Status))
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	if len(parts) == 0 {
		return "provider request failed"
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// Is matches another *ProviderError with the same status
func (e *ProviderError) Is(target error) bool {
	if pe, ok := target.(*ProviderError); ok {
		return e.Status == pe.Status
	}
	return false
}

// Message returns the provider detail, or fallback when the provider gave none
func (e *ProviderError) Message(fallback string) string {
	if e.Detail != "" {
		return e.Detail
	}
	return fallback
}

// NewProviderError creates a provider error for a non-2xx response
func NewProviderError(op string, status int, detail string) *ProviderError {
	return &ProviderError{Op: op, Status: status, Detail: detail}
}

// NewProviderErrorWithCause creates a provider error with an underlying cause
func NewProviderErrorWithCause(op string, cause error) *ProviderError {
	return &ProviderError{Op: op, Cause: cause}
}

// ErrorMessage returns the user-facing message for err: the provider detail
// when there is one, fallback otherwise.
func ErrorMessage(err error, fallback string) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Message(fallback)
	}
	return fallback
}

// IsProviderError checks if err is (or wraps) a *ProviderError
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

// IsNotFound checks if err is a provider 404
func IsNotFound(err error) bool {
	return errors.Is(err, &ProviderError{Status: http.StatusNotFound})
}
