package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tindwyr/crafthall/internal/domain"
	"github.com/tindwyr/crafthall/internal/event"
	"github.com/tindwyr/crafthall/internal/inventory"
	"github.com/tindwyr/crafthall/internal/recipebook"
)

func newTestManager(t *testing.T) (*Manager, inventory.Service, recipebook.Service, *FileStore) {
	t.Helper()

	recipes := testRecipes(t)
	bus := event.NewMemoryBus()
	bag := inventory.NewService(recipes, bus)
	book := recipebook.NewService(recipes, bus)
	store := NewFileStore(filepath.Join(t.TempDir(), "save.json"))
	return NewManager(store, recipes, bag, book), bag, book, store
}

func TestSaveThenLoadRestoresState(t *testing.T) {
	mgr, bag, book, store := newTestManager(t)
	ctx := context.Background()

	_, err := bag.AddItem(ctx, 1, 3, domain.QualityNormal)
	require.NoError(t, err)
	bag.AddGold(ctx, 75)
	_, err = book.Unlock(ctx, 2)
	require.NoError(t, err)
	_, err = book.Complete(ctx, 2)
	require.NoError(t, err)

	require.NoError(t, mgr.Save(ctx))

	// Load into a fresh set of services backed by the same store
	recipes := testRecipes(t)
	bus := event.NewMemoryBus()
	freshBag := inventory.NewService(recipes, bus)
	freshBook := recipebook.NewService(recipes, bus)
	fresh := NewManager(store, recipes, freshBag, freshBook)

	require.NoError(t, fresh.Load(ctx))

	assert.Equal(t, 3, freshBag.ItemQuantity(1, domain.QualityNormal))
	assert.Equal(t, 75, freshBag.Gold())
	assert.True(t, freshBook.IsUnlocked(2))

	entry, err := freshBook.Complete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, entry.TimesCompleted)
}

func TestLoadWithoutSaveAppliesStarterState(t *testing.T) {
	mgr, bag, book, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, mgr.Load(ctx))

	assert.Empty(t, bag.Stacks())
	assert.Equal(t, 0, bag.Gold())

	// Level-zero recipes come pre-unlocked, the rest stay locked
	assert.True(t, book.IsUnlocked(1))
	assert.True(t, book.IsUnlocked(3))
	assert.False(t, book.IsUnlocked(2))
}

func TestLoadRejectsInvalidSnapshot(t *testing.T) {
	mgr, bag, book, store := newTestManager(t)
	ctx := context.Background()

	corrupt := &Snapshot{
		Version: SnapshotVersion,
		Gold:    -100,
		Stacks: []domain.InventoryStack{
			{RecipeID: 1, Quantity: -2, Quality: domain.QualityNormal},
		},
	}
	data, err := Serialize(corrupt)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, data))

	require.NoError(t, mgr.Load(ctx))

	// Rejected in full: no negative stack, no negative gold, starter book
	assert.Empty(t, bag.Stacks())
	assert.Equal(t, 0, bag.Gold())
	assert.True(t, book.IsUnlocked(1))
}

func TestLoadRejectsUndecodableSave(t *testing.T) {
	mgr, bag, _, store := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []byte("{broken")))
	require.NoError(t, mgr.Load(ctx))

	assert.Empty(t, bag.Stacks())
	assert.Equal(t, 0, bag.Gold())
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSave)
}
