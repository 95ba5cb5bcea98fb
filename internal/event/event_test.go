package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tindwyr/crafthall/internal/domain"
)

func TestMemoryBusFanOut(t *testing.T) {
	bus := NewMemoryBus()

	var first, second int
	bus.Subscribe(domain.EventTypeCraftingCompleted, func(ctx context.Context, e Event) error {
		first++
		return nil
	})
	bus.Subscribe(domain.EventTypeCraftingCompleted, func(ctx context.Context, e Event) error {
		second++
		return nil
	})

	recipe := &domain.Recipe{ID: 1, Name: "Iron Sword"}
	err := bus.Publish(context.Background(), NewCraftingCompletedEvent(recipe))
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestMemoryBusNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), NewCraftingProgressEvent(1, 25, 100, 25))
	assert.NoError(t, err)
}

func TestMemoryBusHandlerErrorsCollected(t *testing.T) {
	bus := NewMemoryBus()

	handlerErr := errors.New("boom")
	called := 0
	bus.Subscribe(domain.EventTypeItemAdded, func(ctx context.Context, e Event) error {
		return handlerErr
	})
	bus.Subscribe(domain.EventTypeItemAdded, func(ctx context.Context, e Event) error {
		called++
		return nil
	})

	stack := &domain.InventoryStack{RecipeID: 3, Quantity: 2, Quality: domain.QualityNormal}
	err := bus.Publish(context.Background(), NewItemAddedEvent(stack, 2))

	// The failing handler must not prevent later handlers from running
	require.Error(t, err)
	assert.Equal(t, 1, called)
}

func TestProgressEventPayload(t *testing.T) {
	e := NewCraftingProgressEvent(7, 100, 100, 10)

	payload, ok := e.Payload.(domain.CraftingProgressPayloadV1)
	require.True(t, ok)
	assert.Equal(t, 7, payload.RecipeID)
	assert.Equal(t, 100, payload.Progress)
	assert.Equal(t, 10, payload.Delta)
	assert.Equal(t, EventSchemaVersion, e.Version)
}
