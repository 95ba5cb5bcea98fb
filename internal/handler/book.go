package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tindwyr/crafthall/internal/logger"
	"github.com/tindwyr/crafthall/internal/recipebook"
)

// HandleGetBook returns the unlocked listing, favorites first
func HandleGetBook(svc recipebook.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.UnlockedRecipes())
	}
}

type FavoriteRequest struct {
	RecipeID int `json:"recipe_id" validate:"required,min=1"`
}

// FavoriteResponse reports the toggle outcome
type FavoriteResponse struct {
	RecipeID int  `json:"recipe_id"`
	Favorite bool `json:"favorite"`
}

// HandleToggleFavorite flips the favorite flag on an unlocked entry
func HandleToggleFavorite(svc recipebook.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req FavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode favorite request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid favorite request", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		if !svc.IsUnlocked(req.RecipeID) {
			respondError(w, http.StatusForbidden, ErrMsgRecipeNotUnlockedError)
			return
		}

		respondJSON(w, http.StatusOK, FavoriteResponse{
			RecipeID: req.RecipeID,
			Favorite: svc.ToggleFavorite(r.Context(), req.RecipeID),
		})
	}
}
