package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

// User-facing error messages. Infrastructure failures collapse to a generic
// message so responses never expose internal error details. Both handlers
// and tests should reference these constants to maintain consistency.
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgInvalidRequest     = "Invalid request body"
	ErrMsgInvalidID          = "Invalid id parameter"

	// Not-found messages
	ErrMsgCategoryNotFoundHTTP = "Category not found"
	ErrMsgItemNotFoundHTTP     = "Item not found"
	ErrMsgRarityNotFoundHTTP   = "Rarity not found"
	ErrMsgUserNotFoundHTTP     = "User not found"
	ErrMsgEntryNotFoundHTTP    = "Item not found in inventory"

	// Conflict messages
	ErrMsgCategoryNameTakenHTTP = "A category with that name already exists"
	ErrMsgUsernameTakenHTTP     = "Username is already taken"
	ErrMsgEmailTakenHTTP        = "Email is already registered"

	// Validation messages
	ErrMsgCategoryCycleHTTP    = "A category cannot be its own ancestor"
	ErrMsgEmptySearchQueryHTTP = "Search query is required"
	ErrMsgInvalidQuantityHTTP  = "Quantity must be a positive integer"
	ErrMsgInvalidInputHTTP     = "Invalid request. Please check your inputs."

	// Access messages
	ErrMsgForbiddenHTTP          = "Insufficient permissions"
	ErrMsgUnauthorizedHTTP       = "Authentication required"
	ErrMsgInvalidCredentialsHTTP = "Invalid username or password"
)

// Success messages for API responses
const (
	MsgCategoryDeletedSuccess = "Category deleted successfully"
	MsgItemDeletedSuccess     = "Item deleted successfully"
	MsgEntryRemovedSuccess    = "Item removed from inventory"
)

// mapServiceError maps domain errors to HTTP status codes and user-facing
// messages. Anything unrecognized is an infrastructure failure and returns
// a 500 with the generic message.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, ErrMsgCategoryNotFoundHTTP
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundHTTP
	case errors.Is(err, domain.ErrRarityNotFound):
		return http.StatusNotFound, ErrMsgRarityNotFoundHTTP
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundHTTP
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound, ErrMsgEntryNotFoundHTTP

	case errors.Is(err, domain.ErrCategoryNameTaken):
		return http.StatusConflict, ErrMsgCategoryNameTakenHTTP
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenHTTP
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, ErrMsgEmailTakenHTTP

	case errors.Is(err, domain.ErrCategoryCycle):
		return http.StatusBadRequest, ErrMsgCategoryCycleHTTP
	case errors.Is(err, domain.ErrEmptySearchQuery):
		return http.StatusBadRequest, ErrMsgEmptySearchQueryHTTP
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityHTTP
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputHTTP

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrMsgForbiddenHTTP
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgUnauthorizedHTTP
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgInvalidCredentialsHTTP
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError maps and writes a service error response
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceError(err)
	respondError(w, status, message)
}
