package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tindwyr/crafthall/internal/domain"
	"github.com/tindwyr/crafthall/internal/guild"
	"github.com/tindwyr/crafthall/internal/logger"
)

type SellItemRequest struct {
	RecipeID   int    `json:"recipe_id" validate:"omitempty,min=1"`
	RecipeName string `json:"recipe_name" validate:"omitempty,max=100"`
	Quality    string `json:"quality" validate:"quality"`
}

// SellItemResponse reports the outcome of a completed sale
type SellItemResponse struct {
	GoldGained int `json:"gold_gained"`
	Gold       int `json:"gold"`
}

// HandleSellItem sells one item to the guild, addressed by recipe id or name
func HandleSellItem(svc guild.Service, wallet interface{ Gold() int }) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SellItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode sell request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid sell request", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}
		if req.RecipeID == 0 && req.RecipeName == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		quality := domain.Quality(req.Quality)
		if req.Quality == "" {
			quality = domain.QualityNormal
		}

		var (
			gained int
			err    error
		)
		if req.RecipeID != 0 {
			gained, err = svc.Sell(r.Context(), req.RecipeID, quality)
		} else {
			gained, err = svc.SellByName(r.Context(), req.RecipeName, quality)
		}
		if err != nil {
			log.Warn("Sell rejected", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, SellItemResponse{
			GoldGained: gained,
			Gold:       wallet.Gold(),
		})
	}
}

// HandleGetPrices lists the guild's buy prices
func HandleGetPrices(svc guild.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Prices())
	}
}
