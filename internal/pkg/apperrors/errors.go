package apperrors

import (
	"errors"
	"fmt"
)

// Authentication errors
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Account errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Profile and resume errors
var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrIncompleteProfile = errors.New("incomplete profile")
	ErrFileTooLarge      = errors.New("file too large")
	ErrInvalidFileType   = errors.New("invalid file type")
	// ErrExtractionFailed is reported as a warning, never as a failed submission
	ErrExtractionFailed = errors.New("resume extraction failed")
)

// Catalog and registration errors
var (
	ErrInternshipNotFound = errors.New("internship not found")
	ErrAlreadyRegistered  = errors.New("already registered")
	ErrInvalidTarget      = errors.New("invalid internship")
)

// External service errors
var (
	ErrServiceUnavailable = errors.New("scoring service unavailable")
	ErrServiceError       = errors.New("scoring service error")
)

// Storage errors
var (
	ErrPersistence = errors.New("persistence failure")
)

// ServiceError carries the status and raw body of a non-200 answer from the scoring service
type ServiceError struct {
	StatusCode int
	Body       string
}

// Error implements error interface
func (e *ServiceError) Error() string {
	return fmt.Sprintf("scoring service returned HTTP %d", e.StatusCode)
}

// Unwrap lets errors.Is match ErrServiceError
func (e *ServiceError) Unwrap() error {
	return ErrServiceError
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewPersistenceError wraps a storage failure so the cause stays loggable but callers only see ErrPersistence
func NewPersistenceError(op string, cause error) error {
	return &CustomError{
		Err:     ErrPersistence,
		Message: fmt.Sprintf("%s: %v", op, cause),
	}
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
	Code      string
	Details   map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithStatusMsg adds a user-friendly status message
func (e *CustomError) WithStatusMsg(msg string) *CustomError {
	e.StatusMsg = msg
	return e
}

// DetailOf returns the first detail string stored under key in any CustomError in the chain
func DetailOf(err error, key string) string {
	var custom *CustomError
	for errors.As(err, &custom) {
		if v, ok := custom.Details[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
		err = custom.Err
		custom = nil
	}
	return ""
}
