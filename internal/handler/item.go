package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/GameCatalog_Go/internal/catalog"
	"github.com/osse101/GameCatalog_Go/internal/domain"
	"github.com/osse101/GameCatalog_Go/internal/item"
	"github.com/osse101/GameCatalog_Go/internal/logger"
)

type CreateItemRequest struct {
	Name        string       `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Description string       `json:"description" validate:"max=2000"`
	ImageURL    string       `json:"imageUrl" validate:"omitempty,url"`
	Price       int          `json:"price" validate:"gte=0"`
	LevelReq    int          `json:"levelreq" validate:"omitempty,gte=1"`
	Stats       domain.Stats `json:"stats"`
	// IsTradable is a pointer so an omitted field keeps the tradable
	// default rather than decoding to false.
	IsTradable *bool `json:"isTradable"`
	CategoryID *int  `json:"categoryid" validate:"omitempty,gte=1"`
	RarityID   *int  `json:"rarityid" validate:"omitempty,gte=1"`
}

type UpdateItemRequest struct {
	Name        *string      `json:"name" validate:"omitempty,min=1,max=100,excludesall=\x00\n\r\t"`
	Description *string      `json:"description" validate:"omitempty,max=2000"`
	ImageURL    *string      `json:"imageUrl" validate:"omitempty,url"`
	Price       *int         `json:"price" validate:"omitempty,gte=0"`
	LevelReq    *int         `json:"levelreq" validate:"omitempty,gte=1"`
	Stats       domain.Stats `json:"stats"`
	IsTradable  *bool        `json:"isTradable"`
	CategoryID  *int         `json:"categoryid" validate:"omitempty,gte=1"`
	RarityID    *int         `json:"rarityid" validate:"omitempty,gte=1"`
	// ClearCategory/ClearRarity detach the respective reference. The
	// corresponding ID field is ignored when set.
	ClearCategory bool `json:"clearCategory"`
	ClearRarity   bool `json:"clearRarity"`
}

// HandleListItems returns a filtered page of items
func HandleListItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var filter domain.ItemFilter
		var ok bool
		if filter.CategoryID, ok = queryIntPtr(r, "categoryid"); !ok {
			respondError(w, http.StatusBadRequest, "Invalid categoryid parameter")
			return
		}
		if filter.RarityID, ok = queryIntPtr(r, "rarityid"); !ok {
			respondError(w, http.StatusBadRequest, "Invalid rarityid parameter")
			return
		}
		if filter.MinLevel, ok = queryIntPtr(r, "minlevel"); !ok {
			respondError(w, http.StatusBadRequest, "Invalid minlevel parameter")
			return
		}
		filter.Name = r.URL.Query().Get("name")

		page, err := svc.ListItems(r.Context(), filter, queryInt(r, "page"), queryInt(r, "size"))
		if err != nil {
			log.Error("Failed to list items", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, page)
	}
}

// HandleSearchItems returns a page of items matching the query by name or
// description
func HandleSearchItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		page, err := svc.SearchItems(r.Context(), query, queryInt(r, "page"), queryInt(r, "size"))
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, page)
	}
}

// HandleGetItem returns one item with category and rarity expanded
func HandleGetItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlParamInt(r, "id")
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		found, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	}
}

// HandleCreateItem creates an item
func HandleCreateItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode create item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid create item request", "error", err)
			respondValidationError(w, err)
			return
		}

		// Items are tradable unless the request says otherwise
		isTradable := true
		if req.IsTradable != nil {
			isTradable = *req.IsTradable
		}

		created, err := svc.Create(r.Context(), domain.Item{
			Name:        req.Name,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			Price:       req.Price,
			LevelReq:    req.LevelReq,
			Stats:       req.Stats,
			IsTradable:  isTradable,
			CategoryID:  req.CategoryID,
			RarityID:    req.RarityID,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleUpdateItem applies a partial update to an item
func HandleUpdateItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := urlParamInt(r, "id")
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		var req UpdateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode update item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid update item request", "error", err)
			respondValidationError(w, err)
			return
		}

		update := domain.ItemUpdate{
			Name:           req.Name,
			Description:    req.Description,
			ImageURL:       req.ImageURL,
			Price:          req.Price,
			LevelReq:       req.LevelReq,
			Stats:          req.Stats,
			IsTradable:     req.IsTradable,
			CategoryID:     req.CategoryID,
			SetCategoryNil: req.ClearCategory,
			RarityID:       req.RarityID,
			SetRarityNil:   req.ClearRarity,
		}
		if req.ClearCategory {
			update.CategoryID = nil
		}
		if req.ClearRarity {
			update.RarityID = nil
		}

		updated, err := svc.Update(r.Context(), id, update)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteItem deletes an item
func HandleDeleteItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlParamInt(r, "id")
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemDeletedSuccess})
	}
}
