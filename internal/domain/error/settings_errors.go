// Package error defines domain-specific errors for the Home Planner application.
package error

import "errors"

// Settings domain errors.
var (
	// ErrSettingsNotFound is returned when a user's settings document does not exist.
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrNegativeBudget is returned when the budget is set to a negative value.
	ErrNegativeBudget = errors.New("budget must not be negative")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeBudget SettingsErrorCode = "SET-010001"

	// Lookup errors (03XXXX)
	ErrCodeSettingsNotFound SettingsErrorCode = "SET-030001"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
