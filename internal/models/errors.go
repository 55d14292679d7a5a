package models

import "errors"

// ErrNotFound is returned when an identity lookup misses. Repository methods
// wrap it so callers can test with errors.Is.
var ErrNotFound = errors.New("product not found")

// DataValidationError reports malformed or missing data in an external
// payload. The HTTP layer translates it to a 400 response.
type DataValidationError struct {
	Message string
}

// NewDataValidationError creates a DataValidationError with the given message.
func NewDataValidationError(message string) *DataValidationError {
	return &DataValidationError{Message: message}
}

func (e *DataValidationError) Error() string {
	return e.Message
}
