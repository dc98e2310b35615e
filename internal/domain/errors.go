package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Image errors
	ErrMsgImageFetch  = "image fetch failed"
	ErrMsgImageDecode = "image decode failed"

	// Matching errors
	ErrMsgDimensionMismatch = "buffer dimensions do not match"
	ErrMsgOutOfBounds       = "region out of screenshot bounds"

	// Ledger errors
	ErrMsgTransactionFailed = "grant transaction failed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Image errors: fetch is transient (caller may retry the screenshot),
	// decode is permanent for that image
	ErrImageFetch  = errors.New(ErrMsgImageFetch)
	ErrImageDecode = errors.New(ErrMsgImageDecode)

	// Matching errors: expected for non-matching item/slot combinations,
	// contained within the catalog sweep and never surfaced to users
	ErrDimensionMismatch = errors.New(ErrMsgDimensionMismatch)
	ErrOutOfBounds       = errors.New(ErrMsgOutOfBounds)

	// Ledger errors
	ErrTransactionFailed = errors.New(ErrMsgTransactionFailed)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
