package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/GameCatalog_Go/internal/category"
	"github.com/osse101/GameCatalog_Go/internal/domain"
	"github.com/osse101/GameCatalog_Go/internal/logger"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Description string `json:"description" validate:"max=500"`
	ParentID    *int   `json:"parentid" validate:"omitempty,gte=1"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100,excludesall=\x00\n\r\t"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	ParentID    *int    `json:"parentid" validate:"omitempty,gte=1"`
	// ClearParent promotes the category to a root. ParentID is ignored
	// when set.
	ClearParent bool `json:"clearParent"`
}

// HandleListCategories lists categories, either flat or as a tree of roots
// with two levels of subcategories when rootOnly=true
func HandleListCategories(svc category.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		rootOnly := r.URL.Query().Get("rootOnly") == "true"

		categories, err := svc.ListAll(r.Context(), rootOnly)
		if err != nil {
			log.Error("Failed to list categories", "error", err)
			respondServiceError(w, err)
			return
		}
		if categories == nil {
			categories = []domain.Category{}
		}

		respondJSON(w, http.StatusOK, categories)
	}
}

// HandleGetCategory returns one category with two levels of subcategories
func HandleGetCategory(svc category.Service) http.HandlerFunc {
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

// HandleCreateCategory creates a category
func HandleCreateCategory(svc category.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode create category request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid create category request", "error", err)
			respondValidationError(w, err)
			return
		}

		created, err := svc.Create(r.Context(), req.Name, req.Description, req.ParentID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleUpdateCategory applies a partial update to a category
func HandleUpdateCategory(svc category.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := urlParamInt(r, "id")
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		var req UpdateCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode update category request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid update category request", "error", err)
			respondValidationError(w, err)
			return
		}

		update := domain.CategoryUpdate{
			Name:         req.Name,
			Description:  req.Description,
			ParentID:     req.ParentID,
			SetParentNil: req.ClearParent,
		}
		if req.ClearParent {
			update.ParentID = nil
		}

		updated, err := svc.Update(r.Context(), id, update)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteCategory deletes a category without cascading
func HandleDeleteCategory(svc category.Service) http.HandlerFunc {
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

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCategoryDeletedSuccess})
	}
}
