package guild

import (
	"context"
	"fmt"
	"strings"

	"github.com/tindwyr/crafthall/internal/catalog"
	"github.com/tindwyr/crafthall/internal/domain"
	"github.com/tindwyr/crafthall/internal/event"
	"github.com/tindwyr/crafthall/internal/inventory"
	"github.com/tindwyr/crafthall/internal/logger"
	"github.com/tindwyr/crafthall/internal/metrics"
)

// Service defines the interface for guild transactions
type Service interface {
	// Sell trades one item of the given recipe and quality for its catalog
	// sell price. The removal happens before the credit; if removal fails,
	// no gold is added.
	Sell(ctx context.Context, recipeID int, quality domain.Quality) (int, error)

	// SellByName resolves a recipe by display name (case-insensitive) and
	// delegates to Sell
	SellByName(ctx context.Context, name string, quality domain.Quality) (int, error)

	// Prices returns every recipe the guild buys, with its fixed sell price
	Prices() []domain.Recipe
}

type service struct {
	recipes *catalog.RecipeCatalog
	bag     inventory.Service
	bus     event.Bus
}

// NewService creates a new guild service
func NewService(recipes *catalog.RecipeCatalog, bag inventory.Service, bus event.Bus) Service {
	return &service{
		recipes: recipes,
		bag:     bag,
		bus:     bus,
	}
}

// Sell performs the sell transaction: verify quantity, remove the item, then
// credit the gold. The ordering is load-bearing; reversing it could credit
// gold for an item that was never removed.
func (s *service) Sell(ctx context.Context, recipeID int, quality domain.Quality) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCalled, "recipeID", recipeID, "quality", quality)

	recipe, err := s.recipes.ByID(recipeID)
	if err != nil {
		return 0, err
	}

	if s.bag.ItemQuantity(recipeID, quality) < 1 {
		log.Warn(LogMsgSellNotInBag, "recipe", recipe.Name, "quality", quality)
		return 0, fmt.Errorf("sell %s: %w", recipe.Name, domain.ErrInsufficientQuantity)
	}

	if err := s.bag.RemoveItem(ctx, recipeID, 1, quality); err != nil {
		return 0, fmt.Errorf("sell %s: %w", recipe.Name, err)
	}

	s.bag.AddGold(ctx, recipe.SellPrice)

	metrics.ItemsSold.WithLabelValues(recipe.Name).Inc()
	metrics.GoldEarned.Add(float64(recipe.SellPrice))

	if err := s.bus.Publish(ctx, event.NewItemSoldEvent(recipe, 1, recipe.SellPrice)); err != nil {
		log.Error(LogMsgPublishFailed, "error", err, "type", domain.EventTypeItemSold)
	}

	log.Info(LogMsgItemSold, "recipe", recipe.Name, "goldGained", recipe.SellPrice)
	return recipe.SellPrice, nil
}

// SellByName resolves the recipe by its display name and sells one item
func (s *service) SellByName(ctx context.Context, name string, quality domain.Quality) (int, error) {
	for _, recipe := range s.recipes.All() {
		if strings.EqualFold(recipe.Name, name) {
			return s.Sell(ctx, recipe.ID, quality)
		}
	}
	logger.FromContext(ctx).Warn(LogMsgSellUnknownName, "name", name)
	return 0, fmt.Errorf("recipe %q: %w", name, domain.ErrRecipeNotFound)
}

// Prices lists the guild's buy prices in catalog order
func (s *service) Prices() []domain.Recipe {
	return s.recipes.All()
}
