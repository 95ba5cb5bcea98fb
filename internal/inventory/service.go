package inventory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tindwyr/crafthall/internal/catalog"
	"github.com/tindwyr/crafthall/internal/domain"
	"github.com/tindwyr/crafthall/internal/event"
	"github.com/tindwyr/crafthall/internal/logger"
)

// Service defines the interface for the bag of holding and the wallet.
// Stacks are keyed by (recipe, quality); a stack never persists with
// quantity <= 0. The wallet balance never goes negative.
type Service interface {
	AddItem(ctx context.Context, recipeID, quantity int, quality domain.Quality) (*domain.InventoryStack, error)
	RemoveItem(ctx context.Context, recipeID, quantity int, quality domain.Quality) error
	ItemQuantity(recipeID int, quality domain.Quality) int
	Stacks() []domain.InventoryStack
	SortBag(ctx context.Context, mode domain.SortMode) error
	BagStats() domain.BagStats

	AddGold(ctx context.Context, amount int)
	RemoveGold(ctx context.Context, amount int) error
	Gold() int

	// Restore replaces the entire ledger state; used by the save loader
	Restore(stacks []domain.InventoryStack, gold int)
}

type service struct {
	recipes *catalog.RecipeCatalog
	bus     event.Bus
	now     func() time.Time

	mu     sync.Mutex
	stacks []domain.InventoryStack
	gold   int
	stats  *domain.BagStats // nil when invalidated
}

// NewService creates a new inventory service
func NewService(recipes *catalog.RecipeCatalog, bus event.Bus) Service {
	return &service{
		recipes: recipes,
		bus:     bus,
		now:     time.Now,
	}
}

// findStack returns the index of the stack matching (recipeID, quality),
// or -1 if absent
func (s *service) findStack(recipeID int, quality domain.Quality) int {
	for i := range s.stacks {
		if s.stacks[i].RecipeID == recipeID && s.stacks[i].Quality == quality {
			return i
		}
	}
	return -1
}

// AddItem increments the matching stack's quantity, creating the stack if
// needed. Quantity must be positive.
func (s *service) AddItem(ctx context.Context, recipeID, quantity int, quality domain.Quality) (*domain.InventoryStack, error) {
	log := logger.FromContext(ctx)

	if quantity <= 0 {
		return nil, fmt.Errorf("add %d: %w", quantity, domain.ErrInvalidQuantity)
	}
	if quantity > domain.MaxTransactionQuantity {
		return nil, fmt.Errorf("add %d exceeds max %d: %w", quantity, domain.MaxTransactionQuantity, domain.ErrInvalidInput)
	}
	if !quality.Valid() {
		return nil, fmt.Errorf("quality %q: %w", quality, domain.ErrInvalidInput)
	}
	if _, err := s.recipes.ByID(recipeID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	i := s.findStack(recipeID, quality)
	if i == -1 {
		s.stacks = append(s.stacks, domain.InventoryStack{
			RecipeID:  recipeID,
			Quantity:  quantity,
			Quality:   quality,
			DateAdded: s.now(),
		})
		i = len(s.stacks) - 1
	} else {
		s.stacks[i].Quantity += quantity
	}
	stack := s.stacks[i]
	s.stats = nil
	s.mu.Unlock()

	log.Info(LogMsgItemAdded, "recipeID", recipeID, "quantity", quantity, "quality", quality, "newTotal", stack.Quantity)

	if err := s.bus.Publish(ctx, event.NewItemAddedEvent(&stack, quantity)); err != nil {
		log.Error(LogMsgPublishFailed, "error", err, "type", domain.EventTypeItemAdded)
	}

	return &stack, nil
}

// RemoveItem decrements the matching stack, deleting it when it reaches zero.
// All-or-nothing: an absent stack or insufficient quantity fails with no
// mutation.
func (s *service) RemoveItem(ctx context.Context, recipeID, quantity int, quality domain.Quality) error {
	log := logger.FromContext(ctx)

	if quantity <= 0 {
		return fmt.Errorf("remove %d: %w", quantity, domain.ErrInvalidQuantity)
	}

	s.mu.Lock()
	i := s.findStack(recipeID, quality)
	if i == -1 {
		s.mu.Unlock()
		log.Warn(LogMsgRemoveMissing, "recipeID", recipeID, "quality", quality)
		return fmt.Errorf("recipe %d (%s): %w", recipeID, quality, domain.ErrStackNotFound)
	}
	if s.stacks[i].Quantity < quantity {
		have := s.stacks[i].Quantity
		s.mu.Unlock()
		log.Warn(LogMsgRemoveInsufficient, "recipeID", recipeID, "have", have, "want", quantity)
		return fmt.Errorf("have %d, want %d: %w", have, quantity, domain.ErrInsufficientQuantity)
	}

	s.stacks[i].Quantity -= quantity
	newTotal := s.stacks[i].Quantity
	if newTotal == 0 {
		// No zero-quantity stacks persist
		s.stacks = append(s.stacks[:i], s.stacks[i+1:]...)
	}
	s.stats = nil
	s.mu.Unlock()

	log.Info(LogMsgItemRemoved, "recipeID", recipeID, "quantity", quantity, "quality", quality, "newTotal", newTotal)

	if err := s.bus.Publish(ctx, event.NewItemRemovedEvent(recipeID, quantity, quality, newTotal)); err != nil {
		log.Error(LogMsgPublishFailed, "error", err, "type", domain.EventTypeItemRemoved)
	}

	return nil
}

// ItemQuantity returns the quantity of the matching stack, 0 if absent
func (s *service) ItemQuantity(recipeID int, quality domain.Quality) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.findStack(recipeID, quality); i != -1 {
		return s.stacks[i].Quantity
	}
	return 0
}

// Stacks returns the bag contents in display order
func (s *service) Stacks() []domain.InventoryStack {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.InventoryStack, len(s.stacks))
	copy(out, s.stacks)
	return out
}

// BagStats aggregates bag contents. The result is cached until the next
// mutating call; callers never observe stale stats across a mutation.
func (s *service) BagStats() domain.BagStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stats != nil {
		return *s.stats
	}

	stats := domain.BagStats{ByQuality: make(map[domain.Quality]int)}
	for _, stack := range s.stacks {
		stats.TotalItems += stack.Quantity
		stats.ByQuality[stack.Quality] += stack.Quantity
		if recipe, err := s.recipes.ByID(stack.RecipeID); err == nil {
			stats.TotalValue += recipe.Value * stack.Quantity
		}
	}
	s.stats = &stats
	return stats
}

// AddGold credits the wallet. Non-positive amounts are a logged no-op.
func (s *service) AddGold(ctx context.Context, amount int) {
	if amount <= 0 {
		logger.FromContext(ctx).Warn(LogMsgAddGoldIgnored, "amount", amount)
		return
	}

	s.mu.Lock()
	s.gold += amount
	balance := s.gold
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgGoldAdded, "amount", amount, "balance", balance)
}

// RemoveGold debits the wallet. A spend beyond the balance is rejected, not
// clamped, with no mutation.
func (s *service) RemoveGold(ctx context.Context, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("remove %d gold: %w", amount, domain.ErrInvalidQuantity)
	}

	s.mu.Lock()
	if amount > s.gold {
		balance := s.gold
		s.mu.Unlock()
		logger.FromContext(ctx).Warn(LogMsgGoldInsufficient, "amount", amount, "balance", balance)
		return fmt.Errorf("have %d, want %d: %w", balance, amount, domain.ErrInsufficientFunds)
	}
	s.gold -= amount
	balance := s.gold
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgGoldRemoved, "amount", amount, "balance", balance)
	return nil
}

// Gold returns the wallet balance
func (s *service) Gold() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gold
}

// Restore replaces the ledger state wholesale. The caller is responsible for
// validating the snapshot first (see persistence.Validate).
func (s *service) Restore(stacks []domain.InventoryStack, gold int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stacks = make([]domain.InventoryStack, len(stacks))
	copy(s.stacks, stacks)
	if gold < 0 {
		gold = 0
	}
	s.gold = gold
	s.stats = nil
}
