package handler

import (
	"net/http"

	"github.com/osse101/GameCatalog_Go/internal/domain"
	"github.com/osse101/GameCatalog_Go/internal/logger"
	"github.com/osse101/GameCatalog_Go/internal/repository"
)

// HandleListRarities returns the rarity reference table. The set is seeded
// by migration and small enough to skip pagination.
func HandleListRarities(repo repository.Rarity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		rarities, err := repo.GetAll(r.Context())
		if err != nil {
			log.Error("Failed to list rarities", "error", err)
			respondServiceError(w, err)
			return
		}
		if rarities == nil {
			rarities = []domain.Rarity{}
		}

		respondJSON(w, http.StatusOK, rarities)
	}
}

// HandleGetRarity returns one rarity tier
func HandleGetRarity(repo repository.Rarity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlParamInt(r, "id")
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		rarity, err := repo.GetByID(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, rarity)
	}
}
