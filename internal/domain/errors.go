package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Member errors
	ErrMsgMemberNotFound = "member not found"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Inventory errors
	ErrMsgNotInInventory = "item not in inventory"
	ErrMsgNothingToSell  = "nothing to sell"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Gacha errors
	ErrMsgEmptyCatalog = "catalog has no items"

	// Validation errors
	ErrMsgInvalidCount = "invalid draw count"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Member errors
	ErrMemberNotFound = errors.New(ErrMsgMemberNotFound)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Inventory errors
	ErrNotInInventory = errors.New(ErrMsgNotInInventory)
	ErrNothingToSell  = errors.New(ErrMsgNothingToSell)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Gacha errors
	ErrEmptyCatalog = errors.New(ErrMsgEmptyCatalog)

	// Validation errors
	ErrInvalidCount = errors.New(ErrMsgInvalidCount)
)
