// Package error defines domain-specific errors for the Home Planner application.
package error

import "errors"

// Sync feed domain errors. Snapshot delivery failures are not recoverable by
// the domain model; they are surfaced to the caller and local state is left
// untouched since the next snapshot is the only source of truth.
var (
	// ErrFeedClosed is returned when subscribing to or publishing on a closed feed.
	ErrFeedClosed = errors.New("snapshot feed is closed")

	// ErrPublishFailed is returned when a change notification could not be published.
	ErrPublishFailed = errors.New("failed to publish change notification")
)

// SyncErrorCode defines error codes for sync feed errors.
// Format: SYN-XXYYYY where XX is category and YYYY is specific error.
type SyncErrorCode string

const (
	ErrCodeFeedClosed    SyncErrorCode = "SYN-010001"
	ErrCodePublishFailed SyncErrorCode = "SYN-010002"
)

// SyncError represents a sync feed error with code and message.
type SyncError struct {
	Code    SyncErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError with the given code and message.
func NewSyncError(code SyncErrorCode, message string, err error) *SyncError {
	return &SyncError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
