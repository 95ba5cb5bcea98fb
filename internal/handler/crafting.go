package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tindwyr/crafthall/internal/catalog"
	"github.com/tindwyr/crafthall/internal/crafting"
	"github.com/tindwyr/crafthall/internal/logger"
)

type StartCraftRequest struct {
	RecipeID int `json:"recipe_id" validate:"required,min=1"`
}

// HandleStartCraft starts a crafting session for a recipe. An unfinished
// session is discarded without refund.
func HandleStartCraft(svc crafting.Service, recipes *catalog.RecipeCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req StartCraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode start craft request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid start craft request", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		recipe, err := recipes.ByID(req.RecipeID)
		if err != nil {
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		if err := svc.StartCrafting(r.Context(), recipe); err != nil {
			log.Error("Failed to start crafting", "error", err, "recipeID", req.RecipeID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		session, _ := svc.Session()
		respondJSON(w, http.StatusOK, session)
	}
}

type UseSkillRequest struct {
	SkillID int    `json:"skill_id" validate:"omitempty,min=1"`
	Key     string `json:"key" validate:"omitempty,max=1"`
}

// HandleUseSkill applies a skill to the active session, addressed either by
// id or by its bound key
func HandleUseSkill(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UseSkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode use skill request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid use skill request", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}
		if req.SkillID == 0 && req.Key == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		var err error
		if req.SkillID != 0 {
			err = svc.UseSkill(r.Context(), req.SkillID)
		} else {
			err = svc.UseSkillByKey(r.Context(), req.Key)
		}
		if err != nil {
			log.Warn("Skill use rejected", "error", err, "skillID", req.SkillID, "key", req.Key)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		session, _ := svc.Session()
		respondJSON(w, http.StatusOK, session)
	}
}

// HandleStopCraft abandons the active session, if any. Idempotent.
func HandleStopCraft(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.StopCrafting(r.Context())
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Crafting stopped"})
	}
}

// HandleGetSession returns the current session snapshot, 404 when idle
func HandleGetSession(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := svc.Session()
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgNoActiveSessionError)
			return
		}
		respondJSON(w, http.StatusOK, session)
	}
}
