package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Not-found errors
	ErrMsgCategoryNotFound = "category not found"
	ErrMsgItemNotFound     = "item not found"
	ErrMsgRarityNotFound   = "rarity not found"
	ErrMsgUserNotFound     = "user not found"
	ErrMsgEntryNotFound    = "inventory entry not found"

	// Conflict errors
	ErrMsgCategoryNameTaken = "category name already exists"
	ErrMsgUsernameTaken     = "username already taken"
	ErrMsgEmailTaken        = "email already registered"

	// Validation errors
	ErrMsgCategoryCycle    = "category cannot be its own ancestor"
	ErrMsgEmptySearchQuery = "search query is required"
	ErrMsgInvalidQuantity  = "quantity must be a positive integer"
	ErrMsgInvalidInput     = "invalid input"

	// Access errors
	ErrMsgForbidden          = "insufficient permissions"
	ErrMsgUnauthorized       = "authentication required"
	ErrMsgInvalidCredentials = "invalid username or password"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Not-found errors (no retry)
	ErrCategoryNotFound = errors.New(ErrMsgCategoryNotFound)
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrRarityNotFound   = errors.New(ErrMsgRarityNotFound)
	ErrUserNotFound     = errors.New(ErrMsgUserNotFound)
	ErrEntryNotFound    = errors.New(ErrMsgEntryNotFound)

	// Conflict errors (uniqueness violations surfaced by the store)
	ErrCategoryNameTaken = errors.New(ErrMsgCategoryNameTaken)
	ErrUsernameTaken     = errors.New(ErrMsgUsernameTaken)
	ErrEmailTaken        = errors.New(ErrMsgEmailTaken)

	// Validation errors
	ErrCategoryCycle    = errors.New(ErrMsgCategoryCycle)
	ErrEmptySearchQuery = errors.New(ErrMsgEmptySearchQuery)
	ErrInvalidQuantity  = errors.New(ErrMsgInvalidQuantity)
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)

	// Access errors. Forbidden carries a generic message so responses never
	// leak whether the target resource exists.
	ErrForbidden          = errors.New(ErrMsgForbidden)
	ErrUnauthorized       = errors.New(ErrMsgUnauthorized)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
)
