package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Ownership / identity errors
	ErrMsgForbidden          = "forbidden"
	ErrMsgUserNotFound       = "user not found"
	ErrMsgInvalidCredentials = "invalid credentials"
	ErrMsgDuplicateLoginID   = "login id already exists"
	ErrMsgTokenExpired       = "token expired"
	ErrMsgTokenInvalid       = "token invalid"
	ErrMsgTokenMissing       = "token missing"

	// Character errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgDuplicateName     = "character name already exists"

	// Item / catalog errors
	ErrMsgItemNotFound      = "item not found"
	ErrMsgDuplicateItemCode = "item code already exists"
	ErrMsgInvalidItemType   = "invalid item type"
	ErrMsgInvalidStat       = "invalid stat"

	// Equipment errors
	ErrMsgNotEquippable = "item is not equippable"
	ErrMsgSlotFull      = "equipment slot is full"
	ErrMsgNotEquipped   = "item is not equipped"

	// Inventory errors
	ErrMsgNotInInventory       = "item not in inventory"
	ErrMsgInsufficientQuantity = "insufficient quantity"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Transaction errors
	ErrMsgTxClosed  = "tx is closed"
	ErrMsgTxTimeout = "transaction timed out"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrForbidden          = errors.New(ErrMsgForbidden)
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
	ErrDuplicateLoginID   = errors.New(ErrMsgDuplicateLoginID)

	// Credential verifier rejection reasons
	ErrTokenExpired = errors.New(ErrMsgTokenExpired)
	ErrTokenInvalid = errors.New(ErrMsgTokenInvalid)
	ErrTokenMissing = errors.New(ErrMsgTokenMissing)

	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrDuplicateName     = errors.New(ErrMsgDuplicateName)

	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrDuplicateItemCode = errors.New(ErrMsgDuplicateItemCode)
	ErrInvalidItemType   = errors.New(ErrMsgInvalidItemType)
	ErrInvalidStat       = errors.New(ErrMsgInvalidStat)

	ErrNotEquippable = errors.New(ErrMsgNotEquippable)
	ErrSlotFull      = errors.New(ErrMsgSlotFull)
	ErrNotEquipped   = errors.New(ErrMsgNotEquipped)

	ErrNotInInventory       = errors.New(ErrMsgNotInInventory)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// ErrInvalidInput is the ValidationError kind: malformed numeric or enum input.
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrTxClosed  = errors.New(ErrMsgTxClosed)
	ErrTxTimeout = errors.New(ErrMsgTxTimeout)
)
