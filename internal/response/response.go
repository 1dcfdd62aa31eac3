package response

import (
	"github.com/gin-gonic/gin"
)

// Error codes returned to clients. These are stable machine-readable kinds;
// HTTP status mapping happens at the handler boundary.
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// AppError is the error type carried from services up to handlers
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// NewAppError creates a new AppError with the given code, message and details
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewNotFoundError creates an AppError for a missing resource
func NewNotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, "")
}

// NewConflictError creates an AppError for a uniqueness-invariant violation
func NewConflictError(message string) *AppError {
	return NewAppError(ErrCodeAlreadyExists, message, "")
}

// NewForbiddenError creates an AppError for a denied or invariant-protected operation
func NewForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, "")
}

// NewValidationError creates an AppError for structurally invalid input
func NewValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, "")
}

// ErrorBody is the JSON error envelope
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// SendError writes a JSON error response with the given status and code
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": ErrorBody{Code: code, Message: message}})
}

// SendFieldErrors writes a validation error carrying a per-field message map,
// distinguishing binding failures from single-message domain errors
func SendFieldErrors(c *gin.Context, status int, fields map[string]string) {
	c.JSON(status, gin.H{"error": ErrorBody{
		Code:    ErrCodeValidation,
		Message: "Request validation failed",
		Fields:  fields,
	}})
}

// SendSuccess writes a JSON success response
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}
