// Package errors provides structured error handling for the reader backend.
// Errors carry a code, the layer/component/operation that raised them, an
// optional cause and free-form context so handlers can log richly while only
// exposing safe messages to clients.
package errors

import (
	"fmt"
	"net/http"
)

// Error codes shared across layers.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeExternalAPI  = "EXTERNAL_API_ERROR"
	CodeTimeout      = "TIMEOUT_ERROR"
	CodeDatabase     = "DATABASE_ERROR"
	CodeUnsupported  = "UNSUPPORTED_ERROR"
	CodeUnknown      = "UNKNOWN_ERROR"
)

// AppContextError represents an error with rich context information
type AppContextError struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Layer     string         `json:"layer,omitempty"`     // rest, usecase, gateway, driver
	Component string         `json:"component,omitempty"` // Specific component/service name
	Operation string         `json:"operation,omitempty"` // Specific operation/method name
	Cause     error          `json:"-"`
	Context   map[string]any `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppContextError) Error() string {
	var prefix string
	if e.Layer != "" && e.Component != "" && e.Operation != "" {
		prefix = fmt.Sprintf("[%s:%s:%s] ", e.Layer, e.Component, e.Operation)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s (caused by: %v)", prefix, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Code, e.Message)
}

// Unwrap returns the underlying error for error chain unwrapping
func (e *AppContextError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps error codes to HTTP status codes
func (e *AppContextError) HTTPStatusCode() int {
	switch e.Code {
	case CodeValidation, CodeUnsupported:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeExternalAPI:
		return http.StatusBadGateway
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// SafeMessage returns the message that may be shown to clients.
// Database and unknown errors never expose their message.
func (e *AppContextError) SafeMessage() string {
	switch e.Code {
	case CodeDatabase, CodeUnknown:
		return "internal server error"
	default:
		return e.Message
	}
}

// HTTPContextResponse represents the structure of error responses sent to clients
type HTTPContextResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTPResponse converts an AppContextError to an HTTP error response
func (e *AppContextError) ToHTTPResponse() HTTPContextResponse {
	return HTTPContextResponse{
		Error:   "error",
		Code:    e.Code,
		Message: e.SafeMessage(),
	}
}

// IsRetryable determines if the error represents a retryable condition
func (e *AppContextError) IsRetryable() bool {
	switch e.Code {
	case CodeTimeout, CodeExternalAPI:
		return true
	default:
		return false
	}
}

// NewAppContextError creates a new AppContextError with full context
func NewAppContextError(
	code, message, layer, component, operation string,
	cause error,
	context map[string]any,
) *AppContextError {
	if context == nil {
		context = make(map[string]any)
	}

	return &AppContextError{
		Code:      code,
		Message:   message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     cause,
		Context:   context,
	}
}

// EnrichWithContext copies err with a new location and merged context.
func EnrichWithContext(
	err *AppContextError,
	layer, component, operation string,
	additionalContext map[string]any,
) *AppContextError {
	merged := make(map[string]any, len(err.Context)+len(additionalContext))
	for k, v := range err.Context {
		merged[k] = v
	}
	for k, v := range additionalContext {
		merged[k] = v
	}

	return &AppContextError{
		Code:      err.Code,
		Message:   err.Message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     err.Cause,
		Context:   merged,
	}
}

func NewValidationContextError(message, layer, component, operation string, context map[string]any) *AppContextError {
	return NewAppContextError(CodeValidation, message, layer, component, operation, nil, context)
}

func NewNotFoundContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeNotFound, message, layer, component, operation, cause, context)
}

func NewDatabaseContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeDatabase, message, layer, component, operation, cause, context)
}

func NewUnknownContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeUnknown, message, layer, component, operation, cause, context)
}
