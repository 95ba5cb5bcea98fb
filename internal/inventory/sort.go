package inventory

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tindwyr/crafthall/internal/domain"
	"github.com/tindwyr/crafthall/internal/logger"
)

// collator orders recipe names the way a player expects, not by raw bytes
var collator = collate.New(language.English, collate.IgnoreCase)

// SortBag reorders the bag's display order in place. Stacking identity is
// untouched; only the order callers see from Stacks changes. Sorting counts
// as a mutation for stats-cache purposes.
func (s *service) SortBag(ctx context.Context, mode domain.SortMode) error {
	if !mode.Valid() {
		return fmt.Errorf("sort mode %q: %w", mode, domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch mode {
	case domain.SortByName:
		sort.SliceStable(s.stacks, func(i, j int) bool {
			return collator.CompareString(s.recipeName(s.stacks[i].RecipeID), s.recipeName(s.stacks[j].RecipeID)) < 0
		})
	case domain.SortByQuantity:
		sort.SliceStable(s.stacks, func(i, j int) bool {
			return s.stacks[i].Quantity > s.stacks[j].Quantity
		})
	case domain.SortByDate:
		sort.SliceStable(s.stacks, func(i, j int) bool {
			return s.stacks[i].DateAdded.After(s.stacks[j].DateAdded)
		})
	case domain.SortByQuality:
		sort.SliceStable(s.stacks, func(i, j int) bool {
			return s.stacks[i].Quality.Rank() > s.stacks[j].Quality.Rank()
		})
	case domain.SortByValue:
		sort.SliceStable(s.stacks, func(i, j int) bool {
			return s.recipeValue(s.stacks[i].RecipeID) > s.recipeValue(s.stacks[j].RecipeID)
		})
	}

	s.stats = nil
	logger.FromContext(ctx).Debug(LogMsgBagSorted, "mode", mode)
	return nil
}

func (s *service) recipeName(recipeID int) string {
	if recipe, err := s.recipes.ByID(recipeID); err == nil {
		return recipe.Name
	}
	return ""
}

func (s *service) recipeValue(recipeID int) int {
	if recipe, err := s.recipes.ByID(recipeID); err == nil {
		return recipe.Value
	}
	return 0
}
