package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tindwyr/crafthall/internal/domain"
)

func stackIDs(stacks []domain.InventoryStack) []int {
	ids := make([]int, len(stacks))
	for i, s := range stacks {
		ids[i] = s.RecipeID
	}
	return ids
}

func seedBag(t *testing.T, svc Service) {
	t.Helper()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	impl := svc.(*service)

	impl.now = func() time.Time { return base }
	_, err := svc.AddItem(ctx, 2, 1, domain.QualityNormal) // Steel Axe, value 180
	require.NoError(t, err)

	impl.now = func() time.Time { return base.Add(time.Hour) }
	_, err = svc.AddItem(ctx, 3, 5, domain.QualityMasterwork) // oak shield, value 60
	require.NoError(t, err)

	impl.now = func() time.Time { return base.Add(2 * time.Hour) }
	_, err = svc.AddItem(ctx, 1, 3, domain.QualityFine) // Iron Sword, value 100
	require.NoError(t, err)
}

func TestSortBagModes(t *testing.T) {
	tests := []struct {
		mode domain.SortMode
		want []int
	}{
		// Case-insensitive collation: Iron Sword, oak shield, Steel Axe
		{domain.SortByName, []int{1, 3, 2}},
		{domain.SortByQuantity, []int{3, 1, 2}},
		{domain.SortByDate, []int{1, 3, 2}},
		{domain.SortByQuality, []int{3, 1, 2}},
		{domain.SortByValue, []int{2, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			svc, _ := newTestService(t)
			seedBag(t, svc)

			require.NoError(t, svc.SortBag(context.Background(), tt.mode))
			assert.Equal(t, tt.want, stackIDs(svc.Stacks()))
		})
	}
}

func TestSortBagPreservesStacking(t *testing.T) {
	svc, _ := newTestService(t)
	seedBag(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.SortBag(ctx, domain.SortByValue))

	// Sorting only reorders display; quantities and identity are untouched
	assert.Equal(t, 1, svc.ItemQuantity(2, domain.QualityNormal))
	assert.Equal(t, 5, svc.ItemQuantity(3, domain.QualityMasterwork))
	assert.Equal(t, 3, svc.ItemQuantity(1, domain.QualityFine))
}

func TestSortBagUnknownMode(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.SortBag(context.Background(), domain.SortMode("rarity"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
