package apperrors

import "fmt"

// ValidationError covers missing or malformed request input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// MissingField reports a required field that was absent from the request.
func MissingField(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
	}
}

// Validation reports malformed input that is not tied to a single field.
func Validation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError indicates that no record matched the given identifier.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// AuthorizationError indicates the requester does not own the resource.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

func Unauthorized(message string) *AuthorizationError {
	return &AuthorizationError{Message: message}
}

// ConflictError indicates a unique-key collision, such as adding the same
// review to a watchlist twice.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func Conflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}
