// Package bootstrap wires the game-layer reactions that tie the services
// together: finished crafts become bag items and book entries, and mutating
// events trigger a best-effort autosave.
package bootstrap

import (
	"context"
	"errors"

	"github.com/tindwyr/crafthall/internal/domain"
	"github.com/tindwyr/crafthall/internal/event"
	"github.com/tindwyr/crafthall/internal/inventory"
	"github.com/tindwyr/crafthall/internal/logger"
	"github.com/tindwyr/crafthall/internal/persistence"
	"github.com/tindwyr/crafthall/internal/recipebook"
)

// RegisterGameHandlers subscribes the craft-completion reaction: deposit one
// item of the crafted recipe at Normal quality and record the completion in
// the recipe book, unlocking the recipe first if this was its first craft.
func RegisterGameHandlers(bus event.Bus, bag inventory.Service, book recipebook.Service) {
	bus.Subscribe(domain.EventTypeCraftingCompleted, func(ctx context.Context, e event.Event) error {
		payload, ok := e.Payload.(domain.CraftingCompletedPayloadV1)
		if !ok {
			return errors.New(ErrMsgUnexpectedPayload)
		}

		log := logger.FromContext(ctx)

		if _, err := bag.AddItem(ctx, payload.RecipeID, 1, domain.QualityNormal); err != nil {
			log.Error(LogMsgDepositFailed, "error", err, "recipeID", payload.RecipeID)
			return err
		}

		if !book.IsUnlocked(payload.RecipeID) {
			if _, err := book.Unlock(ctx, payload.RecipeID); err != nil {
				log.Error(LogMsgUnlockFailed, "error", err, "recipeID", payload.RecipeID)
				return err
			}
		}
		if _, err := book.Complete(ctx, payload.RecipeID); err != nil {
			log.Error(LogMsgCompleteFailed, "error", err, "recipeID", payload.RecipeID)
			return err
		}

		log.Info(LogMsgCraftDeposited, "recipe", payload.RecipeName)
		return nil
	})
}

// autosaveTriggers are the mutating events worth persisting after.
// Progress ticks are deliberately excluded; sessions are transient.
var autosaveTriggers = []domain.EventType{
	domain.EventTypeItemAdded,
	domain.EventTypeItemRemoved,
	domain.EventTypeItemSold,
	domain.EventTypeRecipeUnlocked,
	domain.EventTypeRecipeCompleted,
}

// RegisterAutosave subscribes a best-effort snapshot save after every
// mutating event. Failures are logged, never propagated; a failed save must
// not poison the gameplay transaction that triggered it.
func RegisterAutosave(bus event.Bus, mgr *persistence.Manager) {
	handler := func(ctx context.Context, e event.Event) error {
		if err := mgr.Save(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgAutosaveFailed, "error", err, "trigger", e.Type)
		}
		return nil
	}
	for _, eventType := range autosaveTriggers {
		bus.Subscribe(eventType, handler)
	}
}
