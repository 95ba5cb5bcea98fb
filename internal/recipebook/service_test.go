package recipebook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tindwyr/crafthall/internal/catalog"
	"github.com/tindwyr/crafthall/internal/domain"
	"github.com/tindwyr/crafthall/internal/event"
)

// recordingBus captures published events for assertions
type recordingBus struct {
	events []event.Event
}

func (b *recordingBus) Publish(ctx context.Context, e event.Event) error {
	b.events = append(b.events, e)
	return nil
}

func (b *recordingBus) Subscribe(eventType domain.EventType, handler event.Handler) {}

func newTestService(t *testing.T) (Service, *recordingBus) {
	t.Helper()
	recipes, err := catalog.NewRecipeCatalog([]domain.Recipe{
		{ID: 1, Name: "Iron Sword", Materials: []string{"iron ingot"}, MaxProgress: 100, Difficulty: domain.DifficultyEasy, Category: "weapon", Value: 100, SellPrice: 50},
		{ID: 2, Name: "Amber Ring", Materials: []string{"amber", "gold wire"}, MaxProgress: 120, Difficulty: domain.DifficultyHard, Category: "jewelry", Value: 220, SellPrice: 110},
		{ID: 5, Name: "Willow Bow", Materials: []string{"willow branch"}, MaxProgress: 90, Difficulty: domain.DifficultyMedium, Category: "weapon", Value: 140, SellPrice: 70},
	})
	require.NoError(t, err)

	bus := &recordingBus{}
	return NewService(recipes, bus), bus
}

// Scenario E: unlocking twice returns the same entry, still with zero
// completions.
func TestUnlockIdempotent(t *testing.T) {
	svc, bus := newTestService(t)
	ctx := context.Background()

	first, err := svc.Unlock(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, first.TimesCompleted)

	second, err := svc.Unlock(ctx, 5)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 0, second.TimesCompleted)

	// Only the first unlock publishes
	assert.Len(t, bus.events, 1)
	assert.Equal(t, domain.EventTypeRecipeUnlocked, bus.events[0].Type)
}

func TestUnlockUnknownRecipe(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Unlock(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	assert.False(t, svc.IsUnlocked(404))
}

func TestCompleteRequiresUnlock(t *testing.T) {
	svc, bus := newTestService(t)
	ctx := context.Background()

	_, err := svc.Complete(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrRecipeNotUnlocked)
	assert.Empty(t, bus.events)

	_, err = svc.Unlock(ctx, 1)
	require.NoError(t, err)

	entry, err := svc.Complete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.TimesCompleted)

	entry, err = svc.Complete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, entry.TimesCompleted)

	completions := 0
	for _, e := range bus.events {
		if e.Type == domain.EventTypeRecipeCompleted {
			completions++
		}
	}
	assert.Equal(t, 2, completions)
}

func TestUnlockedRecipesOrdering(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, id := range []int{1, 2, 5} {
		_, err := svc.Unlock(ctx, id)
		require.NoError(t, err)
	}

	// Alphabetical: Amber Ring, Iron Sword, Willow Bow
	listing := svc.UnlockedRecipes()
	require.Len(t, listing, 3)
	assert.Equal(t, []int{2, 1, 5}, listingIDs(listing))

	// Favorites come first, alphabetical within each group
	assert.True(t, svc.ToggleFavorite(ctx, 5))

	listing = svc.UnlockedRecipes()
	assert.Equal(t, []int{5, 2, 1}, listingIDs(listing))
}

func TestUnlockedRecipesCacheRecomputedAfterMutation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Unlock(ctx, 1)
	require.NoError(t, err)

	first := svc.UnlockedRecipes()
	require.Len(t, first, 1)

	// Cached: repeated reads return the same slice
	second := svc.UnlockedRecipes()
	assert.Equal(t, first, second)

	_, err = svc.Unlock(ctx, 2)
	require.NoError(t, err)

	// Mutation purges the cache
	third := svc.UnlockedRecipes()
	assert.Len(t, third, 2)
}

func TestToggleFavorite(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Unknown or locked recipe: no-op false
	assert.False(t, svc.ToggleFavorite(ctx, 1))
	assert.False(t, svc.ToggleFavorite(ctx, 999))

	_, err := svc.Unlock(ctx, 1)
	require.NoError(t, err)

	assert.True(t, svc.ToggleFavorite(ctx, 1))
	assert.False(t, svc.ToggleFavorite(ctx, 1))
}

func TestEntriesAndRestore(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Unlock(ctx, 1)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, 1)
	require.NoError(t, err)

	saved := svc.Entries()
	require.Len(t, saved, 1)

	fresh, _ := newTestService(t)
	fresh.Restore(saved)

	assert.True(t, fresh.IsUnlocked(1))
	entry, err := fresh.Complete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, entry.TimesCompleted)
}

func listingIDs(entries []*domain.RecipeBookEntry) []int {
	ids := make([]int, len(entries))
	for i, e := range entries {
		ids[i] = e.RecipeID
	}
	return ids
}
