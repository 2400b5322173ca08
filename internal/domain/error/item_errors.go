// Package error defines domain-specific errors for the Home Planner application.
package error

import "errors"

// Item domain errors.
var (
	// ErrItemNotFound is returned when an item is not found in the system.
	ErrItemNotFound = errors.New("item not found")

	// ErrCandidateNotFound is returned when a candidate is not found on the item.
	ErrCandidateNotFound = errors.New("candidate not found")

	// ErrEmptyItemName is returned when an item name is empty.
	ErrEmptyItemName = errors.New("item name must not be empty")

	// ErrEmptyCandidateName is returned when a candidate name is empty.
	ErrEmptyCandidateName = errors.New("candidate name must not be empty")

	// ErrInvalidPriority is returned when the priority is not one of the known tiers.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrNegativePrice is returned when a price is negative.
	ErrNegativePrice = errors.New("price must not be negative")

	// ErrItemPurchased is returned when mutating candidates of a purchased item.
	ErrItemPurchased = errors.New("item already purchased")

	// ErrItemNotDecided is returned when purchasing an item with no selected candidate.
	ErrItemNotDecided = errors.New("item has no selected candidate")

	// ErrItemNotDropped is returned when restoring an item that is not dropped.
	ErrItemNotDropped = errors.New("item is not dropped")

	// ErrUnauthorizedItemAccess is returned when a user accesses another user's item.
	ErrUnauthorizedItemAccess = errors.New("unauthorized access to item")
)

// ItemErrorCode defines error codes for item errors.
// Format: ITM-XXYYYY where XX is category and YYYY is specific error.
type ItemErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyItemName      ItemErrorCode = "ITM-010001"
	ErrCodeEmptyCandidateName ItemErrorCode = "ITM-010002"
	ErrCodeInvalidPriority    ItemErrorCode = "ITM-010003"
	ErrCodeNegativePrice      ItemErrorCode = "ITM-010004"
	ErrCodeMissingItemFields  ItemErrorCode = "ITM-010005"

	// Invalid state errors (02XXXX)
	ErrCodeItemPurchased  ItemErrorCode = "ITM-020001"
	ErrCodeItemNotDecided ItemErrorCode = "ITM-020002"
	ErrCodeItemNotDropped ItemErrorCode = "ITM-020003"

	// Lookup/access errors (03XXXX)
	ErrCodeItemNotFound           ItemErrorCode = "ITM-030001"
	ErrCodeCandidateNotFound      ItemErrorCode = "ITM-030002"
	ErrCodeUnauthorizedItemAccess ItemErrorCode = "ITM-030003"
)

// ItemError represents an item error with code and message.
type ItemError struct {
	Code    ItemErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ItemError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ItemError) Unwrap() error {
	return e.Err
}

// NewItemError creates a new ItemError with the given code and message.
func NewItemError(code ItemErrorCode, message string, err error) *ItemError {
	return &ItemError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
