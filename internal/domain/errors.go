package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Ledger errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgAccountNotFound   = "account not found"

	// Catalog errors
	ErrMsgItemNotFound  = "item not found"
	ErrMsgItemExists    = "item already exists"
	ErrMsgAmbiguousItem = "multiple items match"

	// Admin registry errors
	ErrMsgRoleNotFound = "role is not an admin role"
	ErrMsgRoleExists   = "role is already an admin role"

	// Daily reward errors
	ErrMsgAlreadyClaimed = "daily reward already claimed today"

	// Purchase session errors
	ErrMsgSessionNotFound = "purchase session expired or not found"
	ErrMsgNotSessionOwner = "purchase session belongs to another user"
	ErrMsgRoleGrantFailed = "role grant failed"

	// Authorization errors
	ErrMsgUnauthorized = "not authorized"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Ledger errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrAccountNotFound   = errors.New(ErrMsgAccountNotFound)

	// Catalog errors
	ErrItemNotFound  = errors.New(ErrMsgItemNotFound)
	ErrItemExists    = errors.New(ErrMsgItemExists)
	ErrAmbiguousItem = errors.New(ErrMsgAmbiguousItem)

	// Admin registry errors
	ErrRoleNotFound = errors.New(ErrMsgRoleNotFound)
	ErrRoleExists   = errors.New(ErrMsgRoleExists)

	// Daily reward errors
	ErrAlreadyClaimed = errors.New(ErrMsgAlreadyClaimed)

	// Purchase session errors
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)
	ErrNotSessionOwner = errors.New(ErrMsgNotSessionOwner)
	ErrRoleGrantFailed = errors.New(ErrMsgRoleGrantFailed)

	// Authorization errors
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
