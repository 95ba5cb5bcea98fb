package inventory

import (
	"context"
	"testing"
	"time"

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

func testCatalog(t *testing.T) *catalog.RecipeCatalog {
	t.Helper()
	c, err := catalog.NewRecipeCatalog([]domain.Recipe{
		{ID: 1, Name: "Iron Sword", Materials: []string{"iron ingot"}, MaxProgress: 100, Difficulty: domain.DifficultyEasy, Category: "weapon", Value: 100, SellPrice: 50},
		{ID: 2, Name: "Steel Axe", Materials: []string{"steel ingot"}, MaxProgress: 150, Difficulty: domain.DifficultyMedium, Category: "weapon", Value: 180, SellPrice: 90},
		{ID: 3, Name: "oak shield", Materials: []string{"oak plank"}, MaxProgress: 80, Difficulty: domain.DifficultyEasy, Category: "armor", Value: 60, SellPrice: 30},
	})
	require.NoError(t, err)
	return c
}

func newTestService(t *testing.T) (Service, *recordingBus) {
	t.Helper()
	bus := &recordingBus{}
	return NewService(testCatalog(t), bus), bus
}

func TestAddItemStacking(t *testing.T) {
	svc, bus := newTestService(t)
	ctx := context.Background()

	stack, err := svc.AddItem(ctx, 1, 2, domain.QualityNormal)
	require.NoError(t, err)
	assert.Equal(t, 2, stack.Quantity)

	// Same (recipe, quality) merges into the existing stack
	stack, err = svc.AddItem(ctx, 1, 3, domain.QualityNormal)
	require.NoError(t, err)
	assert.Equal(t, 5, stack.Quantity)
	assert.Len(t, svc.Stacks(), 1)

	// A different quality gets its own stack
	_, err = svc.AddItem(ctx, 1, 1, domain.QualityFine)
	require.NoError(t, err)
	assert.Len(t, svc.Stacks(), 2)

	assert.Equal(t, 5, svc.ItemQuantity(1, domain.QualityNormal))
	assert.Equal(t, 1, svc.ItemQuantity(1, domain.QualityFine))
	assert.Equal(t, 0, svc.ItemQuantity(2, domain.QualityNormal))

	assert.Len(t, bus.events, 3)
}

func TestAddItemRejectsBadInput(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, 0, domain.QualityNormal)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.AddItem(ctx, 1, -4, domain.QualityNormal)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.AddItem(ctx, 1, 1, domain.Quality("SHINY"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.AddItem(ctx, 42, 1, domain.QualityNormal)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	assert.Empty(t, svc.Stacks())
}

func TestRemoveItemAllOrNothing(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, 3, domain.QualityNormal)
	require.NoError(t, err)

	// Scenario D: removing more than stocked fails and leaves quantity alone
	err = svc.RemoveItem(ctx, 1, 5, domain.QualityNormal)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	assert.Equal(t, 3, svc.ItemQuantity(1, domain.QualityNormal))

	// Absent stack
	err = svc.RemoveItem(ctx, 2, 1, domain.QualityNormal)
	assert.ErrorIs(t, err, domain.ErrStackNotFound)

	// Wrong quality is a different stack
	err = svc.RemoveItem(ctx, 1, 1, domain.QualityMasterwork)
	assert.ErrorIs(t, err, domain.ErrStackNotFound)

	require.NoError(t, svc.RemoveItem(ctx, 1, 2, domain.QualityNormal))
	assert.Equal(t, 1, svc.ItemQuantity(1, domain.QualityNormal))
}

func TestRemoveItemDeletesEmptyStack(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, 2, domain.QualityNormal)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, 1, 2, domain.QualityNormal))

	// No zero-quantity stack persists in the ledger
	assert.Empty(t, svc.Stacks())
	assert.Equal(t, 0, svc.ItemQuantity(1, domain.QualityNormal))
}

// Round-trip property: add then remove of the same quantity restores the
// prior state.
func TestAddRemoveRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 2, 4, domain.QualityFine)
	require.NoError(t, err)
	before := svc.Stacks()

	_, err = svc.AddItem(ctx, 2, 7, domain.QualityFine)
	require.NoError(t, err)
	require.NoError(t, svc.RemoveItem(ctx, 2, 7, domain.QualityFine))

	after := svc.Stacks()
	require.Len(t, after, len(before))
	assert.Equal(t, before[0].Quantity, after[0].Quantity)
	assert.Equal(t, before[0].Quality, after[0].Quality)
}

func TestStackInvariantNeverNonPositive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ops := []struct {
		add      bool
		recipeID int
		qty      int
	}{
		{true, 1, 3}, {false, 1, 1}, {false, 1, 5}, {true, 2, 1},
		{false, 2, 1}, {false, 2, 1}, {true, 3, 2}, {false, 3, 2},
	}
	for _, op := range ops {
		if op.add {
			_, _ = svc.AddItem(ctx, op.recipeID, op.qty, domain.QualityNormal)
		} else {
			_ = svc.RemoveItem(ctx, op.recipeID, op.qty, domain.QualityNormal)
		}
		for _, stack := range svc.Stacks() {
			assert.Positive(t, stack.Quantity)
		}
	}
}

func TestBagStatsCachedAndInvalidated(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, 2, domain.QualityNormal) // value 100 each
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, 3, 1, domain.QualityFine) // value 60
	require.NoError(t, err)

	stats := svc.BagStats()
	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 260, stats.TotalValue)
	assert.Equal(t, 2, stats.ByQuality[domain.QualityNormal])
	assert.Equal(t, 1, stats.ByQuality[domain.QualityFine])

	// Stats must not go stale across a mutation
	require.NoError(t, svc.RemoveItem(ctx, 1, 1, domain.QualityNormal))
	stats = svc.BagStats()
	assert.Equal(t, 2, stats.TotalItems)
	assert.Equal(t, 160, stats.TotalValue)
}

func TestWalletInvariants(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.Equal(t, 0, svc.Gold())

	// Non-positive credit is a no-op
	svc.AddGold(ctx, 0)
	svc.AddGold(ctx, -10)
	assert.Equal(t, 0, svc.Gold())

	svc.AddGold(ctx, 100)
	assert.Equal(t, 100, svc.Gold())

	// Overspend is rejected, not clamped, with no mutation
	err := svc.RemoveGold(ctx, 150)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 100, svc.Gold())

	require.NoError(t, svc.RemoveGold(ctx, 100))
	assert.Equal(t, 0, svc.Gold())
	assert.GreaterOrEqual(t, svc.Gold(), 0)
}

func TestRestore(t *testing.T) {
	svc, _ := newTestService(t)

	svc.Restore([]domain.InventoryStack{
		{RecipeID: 1, Quantity: 4, Quality: domain.QualityNormal, DateAdded: time.Now()},
	}, 250)

	assert.Equal(t, 4, svc.ItemQuantity(1, domain.QualityNormal))
	assert.Equal(t, 250, svc.Gold())
	assert.Equal(t, 4, svc.BagStats().TotalItems)
}
