package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tindwyr/crafthall/internal/domain"
)

// Sentinel errors for catalog loading
var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// RecipeFile represents the JSON configuration for the recipe catalog
type RecipeFile struct {
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Recipes     []domain.Recipe `json:"recipes"`
}

// SkillFile represents the JSON configuration for the skill catalog
type SkillFile struct {
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Skills      []domain.Skill `json:"skills"`
}

// LoadRecipeCatalog reads, parses and validates a recipe config file
func LoadRecipeCatalog(path string) (*RecipeCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe config file: %w", err)
	}

	var file RecipeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse recipe config: %w", err)
	}

	if len(file.Recipes) == 0 {
		return nil, fmt.Errorf("%w: no recipes defined in %s", ErrInvalidConfig, path)
	}

	return NewRecipeCatalog(file.Recipes)
}

// LoadSkillCatalog reads, parses and validates a skill config file
func LoadSkillCatalog(path string) (*SkillCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill config file: %w", err)
	}

	var file SkillFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse skill config: %w", err)
	}

	if len(file.Skills) == 0 {
		return nil, fmt.Errorf("%w: no skills defined in %s", ErrInvalidConfig, path)
	}

	return NewSkillCatalog(file.Skills)
}
