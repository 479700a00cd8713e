package util

import "net/http"

const (
	CodeMissingTenant = "missing_tenant"
	CodeInvalidInput  = "invalid_input"
	CodeNotFound      = "not_found"
	CodeInternalError = "internal_error"
)

// APIError is a client-facing error with a stable code and HTTP status.
// Anything that is not an APIError renders as a generic 500.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewMissingTenant(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: CodeMissingTenant, Message: message}
}

func NewInvalidInput(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: CodeInvalidInput, Message: message}
}

func NewNotFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Code: CodeNotFound, Message: message}
}
