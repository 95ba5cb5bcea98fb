package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tindwyr/crafthall/internal/domain"
	"github.com/tindwyr/crafthall/internal/metrics"
)

// Event represents a generic event in the system
type Event struct {
	Version string           `json:"version"` // Event schema version (e.g., "1.0")
	Type    domain.EventType `json:"type"`
	Payload interface{}      `json:"payload"`
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus.
// Any number of handlers may subscribe to the same event type; the UI,
// audio, persistence and stats layers all react to the same events
// independently.
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType domain.EventType, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[domain.EventType][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[domain.EventType][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously, in
// subscription order. Handler errors are collected, not short-circuited.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(event.Type)).Inc()
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType domain.EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Type-safe event constructors

// NewCraftingCompletedEvent creates the event published exactly once per
// completed crafting session
func NewCraftingCompletedEvent(recipe *domain.Recipe) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeCraftingCompleted,
		Payload: domain.CraftingCompletedPayloadV1{
			RecipeID:   recipe.ID,
			RecipeName: recipe.Name,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewCraftingProgressEvent creates a progress-changed event. Delta is the
// post-clamp increment actually applied.
func NewCraftingProgressEvent(recipeID, progress, maxProgress, delta int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeCraftingProgress,
		Payload: domain.CraftingProgressPayloadV1{
			RecipeID:    recipeID,
			Progress:    progress,
			MaxProgress: maxProgress,
			Delta:       delta,
		},
	}
}

// NewItemAddedEvent creates an item added event
func NewItemAddedEvent(stack *domain.InventoryStack, quantity int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeItemAdded,
		Payload: domain.ItemAddedPayloadV1{
			RecipeID: stack.RecipeID,
			Quantity: quantity,
			Quality:  stack.Quality,
			NewTotal: stack.Quantity,
		},
	}
}

// NewItemRemovedEvent creates an item removed event
func NewItemRemovedEvent(recipeID, quantity int, quality domain.Quality, newTotal int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeItemRemoved,
		Payload: domain.ItemRemovedPayloadV1{
			RecipeID: recipeID,
			Quantity: quantity,
			Quality:  quality,
			NewTotal: newTotal,
		},
	}
}

// NewItemSoldEvent creates an item sold event
func NewItemSoldEvent(recipe *domain.Recipe, quantity, goldGained int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeItemSold,
		Payload: domain.ItemSoldPayloadV1{
			RecipeID:   recipe.ID,
			RecipeName: recipe.Name,
			Quantity:   quantity,
			GoldGained: goldGained,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewRecipeUnlockedEvent creates a recipe unlocked event
func NewRecipeUnlockedEvent(entry *domain.RecipeBookEntry) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeRecipeUnlocked,
		Payload: domain.RecipeUnlockedPayloadV1{
			RecipeID: entry.RecipeID,
		},
	}
}

// NewRecipeCompletedEvent creates a recipe completed event
func NewRecipeCompletedEvent(entry *domain.RecipeBookEntry) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeRecipeCompleted,
		Payload: domain.RecipeCompletedPayloadV1{
			RecipeID:       entry.RecipeID,
			TimesCompleted: entry.TimesCompleted,
		},
	}
}
