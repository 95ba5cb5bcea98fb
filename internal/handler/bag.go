package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tindwyr/crafthall/internal/domain"
	"github.com/tindwyr/crafthall/internal/inventory"
	"github.com/tindwyr/crafthall/internal/logger"
)

// BagResponse carries the full ledger view
type BagResponse struct {
	Stacks []domain.InventoryStack `json:"stacks"`
	Gold   int                     `json:"gold"`
}

// HandleGetBag returns every stack plus the wallet balance
func HandleGetBag(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, BagResponse{
			Stacks: svc.Stacks(),
			Gold:   svc.Gold(),
		})
	}
}

type SortBagRequest struct {
	Mode string `json:"mode" validate:"required,sortmode"`
}

// HandleSortBag reorders the ledger stacks in place
func HandleSortBag(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SortBagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode sort bag request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid sort bag request", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		if err := svc.SortBag(r.Context(), domain.SortMode(req.Mode)); err != nil {
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, BagResponse{
			Stacks: svc.Stacks(),
			Gold:   svc.Gold(),
		})
	}
}

// HandleGetBagStats returns the aggregate bag statistics
func HandleGetBagStats(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.BagStats())
	}
}
