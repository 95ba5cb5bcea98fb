package catalog

import (
	"fmt"

	"github.com/tindwyr/crafthall/internal/domain"
)

// RecipeCatalog is an immutable lookup table over the recipe reference data.
// It is built once at startup and freely shared; no method mutates it.
type RecipeCatalog struct {
	recipes []domain.Recipe
	byID    map[int]*domain.Recipe
}

// NewRecipeCatalog validates the given recipes and builds the catalog.
// All validation issues are aggregated into a single *ValidationError.
func NewRecipeCatalog(recipes []domain.Recipe) (*RecipeCatalog, error) {
	var issues issueList
	seen := make(map[int]bool, len(recipes))

	for i := range recipes {
		r := &recipes[i]
		if r.ID <= 0 {
			issues.addf("recipe at index %d: missing or non-positive id", i)
		} else if seen[r.ID] {
			issues.addf("recipe %d: duplicate id", r.ID)
		} else {
			seen[r.ID] = true
		}
		if r.Name == "" {
			issues.addf("recipe %d: empty name", r.ID)
		}
		if r.MaxProgress <= 0 {
			issues.addf("recipe %d: max_progress must be > 0, got %d", r.ID, r.MaxProgress)
		}
		if !r.Difficulty.Valid() {
			issues.addf("recipe %d: unknown difficulty %q", r.ID, r.Difficulty)
		}
		if len(r.Materials) == 0 {
			issues.addf("recipe %d: empty material list", r.ID)
		} else {
			for j, m := range r.Materials {
				if m == "" {
					issues.addf("recipe %d: empty material at index %d", r.ID, j)
				}
			}
		}
		if r.Value < 0 {
			issues.addf("recipe %d: negative value", r.ID)
		}
		if r.SellPrice < 0 {
			issues.addf("recipe %d: negative sell price", r.ID)
		}
	}

	if err := issues.err("recipes"); err != nil {
		return nil, err
	}

	c := &RecipeCatalog{
		recipes: recipes,
		byID:    make(map[int]*domain.Recipe, len(recipes)),
	}
	for i := range c.recipes {
		c.byID[c.recipes[i].ID] = &c.recipes[i]
	}
	return c, nil
}

// All returns every recipe in catalog order
func (c *RecipeCatalog) All() []domain.Recipe {
	out := make([]domain.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// Count returns the number of recipes in the catalog
func (c *RecipeCatalog) Count() int {
	return len(c.recipes)
}

// ByID returns the recipe with the given id
func (c *RecipeCatalog) ByID(id int) (*domain.Recipe, error) {
	r, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("recipe %d: %w", id, domain.ErrRecipeNotFound)
	}
	return r, nil
}

// AtIndex returns the recipe at the given 1-based catalog position.
// Used by the recipe-browsing cursor.
func (c *RecipeCatalog) AtIndex(index int) (*domain.Recipe, error) {
	if index < 1 || index > len(c.recipes) {
		return nil, fmt.Errorf("index %d out of range [1, %d]: %w", index, len(c.recipes), domain.ErrRecipeNotFound)
	}
	return &c.recipes[index-1], nil
}

// ByCategory returns every recipe in the given category, in catalog order
func (c *RecipeCatalog) ByCategory(category string) []domain.Recipe {
	var out []domain.Recipe
	for _, r := range c.recipes {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// ByDifficulty returns every recipe of the given difficulty, in catalog order
func (c *RecipeCatalog) ByDifficulty(difficulty domain.Difficulty) []domain.Recipe {
	var out []domain.Recipe
	for _, r := range c.recipes {
		if r.Difficulty == difficulty {
			out = append(out, r)
		}
	}
	return out
}
