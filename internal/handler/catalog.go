package handler

import (
	"net/http"

	"github.com/tindwyr/crafthall/internal/catalog"
)

// HandleGetRecipes lists the full recipe catalog
func HandleGetRecipes(recipes *catalog.RecipeCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, recipes.All())
	}
}

// HandleGetSkills lists the full skill catalog
func HandleGetSkills(skills *catalog.SkillCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, skills.All())
	}
}
