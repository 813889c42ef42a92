package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/GameCatalog_Go/internal/catalog"
	"github.com/osse101/GameCatalog_Go/internal/logger"
	"github.com/osse101/GameCatalog_Go/internal/middleware"
)

type AddInventoryItemRequest struct {
	ItemID   int `json:"itemid" validate:"required,gte=1"`
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

type SetInventoryQuantityRequest struct {
	// Quantity <= 0 removes the entry instead of storing a zero
	Quantity int `json:"quantity"`
}

// HandleGetInventory returns a page of the user's inventory with item
// detail expanded. Only the owner or an admin may read it.
func HandleGetInventory(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, ErrMsgUnauthorizedHTTP)
			return
		}
		userID, ok := urlParamInt(r, "userID")
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		page, err := svc.GetInventory(r.Context(), actor, userID, queryInt(r, "page"), queryInt(r, "size"))
		if err != nil {
			log.Warn("Failed to get inventory", "userID", userID, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, page)
	}
}

// HandleAddInventoryItem grants an item to the user, merging quantities
// into any existing entry
func HandleAddInventoryItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, ErrMsgUnauthorizedHTTP)
			return
		}
		userID, ok := urlParamInt(r, "userID")
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		var req AddInventoryItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode add inventory request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid add inventory request", "error", err)
			respondValidationError(w, err)
			return
		}

		entry, err := svc.AddInventoryItem(r.Context(), actor, userID, req.ItemID, req.Quantity)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, entry)
	}
}

// HandleSetInventoryQuantity replaces the stored quantity of an entry. A
// quantity of zero or less removes the entry.
func HandleSetInventoryQuantity(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, ErrMsgUnauthorizedHTTP)
			return
		}
		userID, ok := urlParamInt(r, "userID")
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}
		itemID, ok := urlParamInt(r, "itemID")
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		var req SetInventoryQuantityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode set quantity request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		entry, err := svc.SetInventoryQuantity(r.Context(), actor, userID, itemID, req.Quantity)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		if entry == nil {
			respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEntryRemovedSuccess})
			return
		}

		respondJSON(w, http.StatusOK, entry)
	}
}

// HandleRemoveInventoryItem deletes an entry from the user's inventory
func HandleRemoveInventoryItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, ErrMsgUnauthorizedHTTP)
			return
		}
		userID, ok := urlParamInt(r, "userID")
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}
		itemID, ok := urlParamInt(r, "itemID")
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		if err := svc.RemoveInventoryItem(r.Context(), actor, userID, itemID); err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEntryRemovedSuccess})
	}
}
