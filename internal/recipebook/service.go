package recipebook

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tindwyr/crafthall/internal/catalog"
	"github.com/tindwyr/crafthall/internal/domain"
	"github.com/tindwyr/crafthall/internal/event"
	"github.com/tindwyr/crafthall/internal/logger"
)

// ListingCacheTTL is the freshness window of the cached unlocked listing.
// Every mutating call purges the cache, so the TTL only bounds staleness
// against out-of-band clock reads.
const ListingCacheTTL = 5 * time.Second

const listingCacheKey = "listing"

// Service defines the interface for recipe-unlock bookkeeping.
// At most one entry exists per recipe; unlocking an already-unlocked recipe
// is a no-op returning the existing entry.
type Service interface {
	Unlock(ctx context.Context, recipeID int) (*domain.RecipeBookEntry, error)
	Complete(ctx context.Context, recipeID int) (*domain.RecipeBookEntry, error)
	IsUnlocked(recipeID int) bool
	UnlockedRecipes() []*domain.RecipeBookEntry
	ToggleFavorite(ctx context.Context, recipeID int) bool

	// Entries returns value copies of every entry; used by the save writer
	Entries() []domain.RecipeBookEntry
	// Restore replaces the entire book state; used by the save loader
	Restore(entries []domain.RecipeBookEntry)
}

var collator = collate.New(language.English, collate.IgnoreCase)

type service struct {
	recipes *catalog.RecipeCatalog
	bus     event.Bus
	now     func() time.Time

	mu      sync.Mutex
	entries map[int]*domain.RecipeBookEntry
	listing *expirable.LRU[string, []*domain.RecipeBookEntry]
}

// NewService creates a new recipe book service
func NewService(recipes *catalog.RecipeCatalog, bus event.Bus) Service {
	return &service{
		recipes: recipes,
		bus:     bus,
		now:     time.Now,
		entries: make(map[int]*domain.RecipeBookEntry),
		listing: expirable.NewLRU[string, []*domain.RecipeBookEntry](1, nil, ListingCacheTTL),
	}
}

// Unlock creates the book entry for a recipe, or returns the existing one.
// Publishes a recipe.unlocked event only on first unlock.
func (s *service) Unlock(ctx context.Context, recipeID int) (*domain.RecipeBookEntry, error) {
	log := logger.FromContext(ctx)

	if _, err := s.recipes.ByID(recipeID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if entry, ok := s.entries[recipeID]; ok {
		s.mu.Unlock()
		return entry, nil
	}

	entry := &domain.RecipeBookEntry{
		RecipeID:     recipeID,
		DateUnlocked: s.now(),
	}
	s.entries[recipeID] = entry
	s.listing.Purge()
	s.mu.Unlock()

	log.Info(LogMsgRecipeUnlocked, "recipeID", recipeID)

	if err := s.bus.Publish(ctx, event.NewRecipeUnlockedEvent(entry)); err != nil {
		log.Error(LogMsgPublishFailed, "error", err, "type", domain.EventTypeRecipeUnlocked)
	}

	return entry, nil
}

// Complete increments the completion counter for an unlocked recipe.
// Completing a recipe with no book entry fails; nothing is created implicitly.
func (s *service) Complete(ctx context.Context, recipeID int) (*domain.RecipeBookEntry, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	entry, ok := s.entries[recipeID]
	if !ok {
		s.mu.Unlock()
		log.Warn(LogMsgCompleteLocked, "recipeID", recipeID)
		return nil, fmt.Errorf("recipe %d: %w", recipeID, domain.ErrRecipeNotUnlocked)
	}
	entry.TimesCompleted++
	s.listing.Purge()
	s.mu.Unlock()

	log.Info(LogMsgRecipeCompleted, "recipeID", recipeID, "timesCompleted", entry.TimesCompleted)

	if err := s.bus.Publish(ctx, event.NewRecipeCompletedEvent(entry)); err != nil {
		log.Error(LogMsgPublishFailed, "error", err, "type", domain.EventTypeRecipeCompleted)
	}

	return entry, nil
}

// IsUnlocked reports whether a book entry exists for the recipe
func (s *service) IsUnlocked(recipeID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[recipeID]
	return ok
}

// UnlockedRecipes returns the book entries ordered favorites first, then
// alphabetically by recipe name. The listing is cached briefly and recomputed
// after any mutating call.
func (s *service) UnlockedRecipes() []*domain.RecipeBookEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.listing.Get(listingCacheKey); ok {
		return cached
	}

	out := make([]*domain.RecipeBookEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		out = append(out, entry)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Favorite != out[j].Favorite {
			return out[i].Favorite
		}
		return collator.CompareString(s.recipeName(out[i].RecipeID), s.recipeName(out[j].RecipeID)) < 0
	})

	s.listing.Add(listingCacheKey, out)
	return out
}

// ToggleFavorite flips the favorite flag and returns the new state.
// Returns false without change when the recipe has no book entry.
func (s *service) ToggleFavorite(ctx context.Context, recipeID int) bool {
	s.mu.Lock()
	entry, ok := s.entries[recipeID]
	if !ok {
		s.mu.Unlock()
		return false
	}
	entry.Favorite = !entry.Favorite
	state := entry.Favorite
	s.listing.Purge()
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgFavoriteToggled, "recipeID", recipeID, "favorite", state)
	return state
}

// Entries returns value copies of every entry, in unspecified order
func (s *service) Entries() []domain.RecipeBookEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.RecipeBookEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		out = append(out, *entry)
	}
	return out
}

// Restore replaces the book state wholesale. The caller is responsible for
// validating the snapshot first (see persistence.Validate).
func (s *service) Restore(entries []domain.RecipeBookEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[int]*domain.RecipeBookEntry, len(entries))
	for i := range entries {
		entry := entries[i]
		s.entries[entry.RecipeID] = &entry
	}
	s.listing.Purge()
}

func (s *service) recipeName(recipeID int) string {
	if recipe, err := s.recipes.ByID(recipeID); err == nil {
		return recipe.Name
	}
	return ""
}
