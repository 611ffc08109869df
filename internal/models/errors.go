package models

import (
	"errors"
	"fmt"
)

// ErrorKind identifies a stable, machine-readable failure category surfaced to
// MCP callers.
type ErrorKind string

const (
	ErrInvalidTicker       ErrorKind = "invalid_ticker"
	ErrInvalidDateFormat   ErrorKind = "invalid_date_format"
	ErrInvalidRange        ErrorKind = "invalid_range"
	ErrProviderUnavailable ErrorKind = "provider_unavailable"
	ErrInsufficientData    ErrorKind = "insufficient_data"
	ErrRenderFailure       ErrorKind = "render_failure"
)

// ToolError carries an error kind and a human-readable message through the
// pipeline to the dispatcher unchanged.
type ToolError struct {
	Kind    ErrorKind `json:"error_kind"`
	Message string    `json:"message"`
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewToolError creates a ToolError with a formatted message.
func NewToolError(kind ErrorKind, format string, args ...interface{}) *ToolError {
	return &ToolError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the error kind from err, or provider_unavailable for
// anything that is not a ToolError (unexpected failures reaching the
// dispatcher are treated as upstream failures, never as a crash).
func KindOf(err error) ErrorKind {
	var te *ToolError
	if errors.As(err, &te) {
		return te.Kind
	}
	return ErrProviderUnavailable
}
