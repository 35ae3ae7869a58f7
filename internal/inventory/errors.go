package inventory

import "fmt"

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeInvalidArgument indicates invalid input parameters
	ErrorTypeInvalidArgument ErrorType = "INVALID_ARGUMENT"
)

// StoreError represents a custom error with additional context
type StoreError struct {
	Type    ErrorType
	Message string
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewError creates a new StoreError
func NewError(errType ErrorType, format string, args ...interface{}) *StoreError {
	return &StoreError{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	if storeErr, ok := err.(*StoreError); ok {
		return storeErr.Type == ErrorTypeInvalidArgument
	}
	return false
}
