package crafting

import (
	"context"
	"fmt"
	"sync"

	"github.com/tindwyr/crafthall/internal/catalog"
	"github.com/tindwyr/crafthall/internal/domain"
	"github.com/tindwyr/crafthall/internal/event"
	"github.com/tindwyr/crafthall/internal/logger"
	"github.com/tindwyr/crafthall/internal/metrics"
)

// Service defines the interface for crafting operations.
// At most one session is alive at a time; starting a new session always
// discards an unfinished one.
type Service interface {
	// Recipe-browsing cursor, 1-based, clamped to [1, catalog count].
	// Moving the cursor never touches an active session.
	SelectRecipe(index int)
	SelectNext()
	SelectPrevious()
	SelectedIndex() int
	SelectedRecipe() *domain.Recipe

	// Session lifecycle
	StartCrafting(ctx context.Context, recipe *domain.Recipe) error
	UseSkill(ctx context.Context, skillID int) error
	UseSkillByKey(ctx context.Context, key string) error
	StopCrafting(ctx context.Context)
	IsCurrentlyCrafting() bool
	Session() (domain.CraftingSession, bool)
}

// session is the single mutable crafting attempt. The recipe is referenced,
// not copied; catalogs are immutable so sharing is safe.
type session struct {
	recipe    *domain.Recipe
	progress  int
	active    bool
	completed bool
}

type service struct {
	recipes *catalog.RecipeCatalog
	skills  *catalog.SkillCatalog
	bus     event.Bus

	mu      sync.Mutex
	cursor  int
	current session
}

// NewService creates a new crafting service
func NewService(recipes *catalog.RecipeCatalog, skills *catalog.SkillCatalog, bus event.Bus) Service {
	return &service{
		recipes: recipes,
		skills:  skills,
		bus:     bus,
		cursor:  1,
	}
}

// clampIndex clamps a cursor position to [1, count]
func (s *service) clampIndex(index int) int {
	if index < 1 {
		return 1
	}
	if count := s.recipes.Count(); index > count {
		return count
	}
	return index
}

func (s *service) SelectRecipe(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = s.clampIndex(index)
}

func (s *service) SelectNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = s.clampIndex(s.cursor + 1)
}

func (s *service) SelectPrevious() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = s.clampIndex(s.cursor - 1)
}

func (s *service) SelectedIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

func (s *service) SelectedRecipe() *domain.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	recipe, err := s.recipes.AtIndex(s.cursor)
	if err != nil {
		return nil
	}
	return recipe
}

// StartCrafting begins a session for the given recipe, unconditionally
// replacing any existing one. Fails only on a nil recipe, with no state change.
func (s *service) StartCrafting(ctx context.Context, recipe *domain.Recipe) error {
	log := logger.FromContext(ctx)

	if recipe == nil {
		log.Warn(LogMsgStartNilRecipe)
		return fmt.Errorf("start crafting: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	s.current = session{recipe: recipe, active: true}
	s.mu.Unlock()

	metrics.SessionsStarted.Inc()
	log.Info(LogMsgSessionStarted, "recipe", recipe.Name, "maxProgress", recipe.MaxProgress)
	return nil
}

// UseSkill applies the skill's progress bonus to the active session, clamped
// at the recipe's max progress. Overflow is discarded, never banked toward a
// next session. Publishes a progress event for the post-clamp delta and a
// completion event exactly once when the clamp lands on max.
func (s *service) UseSkill(ctx context.Context, skillID int) error {
	log := logger.FromContext(ctx)

	skill, err := s.skills.ByID(skillID)
	if err != nil {
		log.Warn(LogMsgUnknownSkill, "skillID", skillID)
		return err
	}

	s.mu.Lock()
	if !s.current.active {
		s.mu.Unlock()
		log.Warn(LogMsgSkillNoSession, "skill", skill.Name)
		return domain.ErrNoActiveSession
	}
	if s.current.completed {
		s.mu.Unlock()
		log.Warn(LogMsgSkillAfterComplete, "skill", skill.Name)
		return domain.ErrSessionCompleted
	}

	recipe := s.current.recipe
	delta := skill.ProgressBonus
	if remaining := recipe.MaxProgress - s.current.progress; delta > remaining {
		delta = remaining
	}
	s.current.progress += delta
	completed := s.current.progress >= recipe.MaxProgress
	if completed {
		s.current.completed = true
	}
	progress := s.current.progress
	s.mu.Unlock()

	metrics.SkillsUsed.WithLabelValues(skill.Name).Inc()
	log.Info(LogMsgSkillUsed, "skill", skill.Name, "delta", delta, "progress", progress, "maxProgress", recipe.MaxProgress)

	// Events are published outside the lock; handlers may call back into
	// other services.
	if err := s.bus.Publish(ctx, event.NewCraftingProgressEvent(recipe.ID, progress, recipe.MaxProgress, delta)); err != nil {
		log.Error(LogMsgPublishFailed, "error", err, "type", domain.EventTypeCraftingProgress)
	}

	if completed {
		metrics.SessionsCompleted.WithLabelValues(recipe.Name).Inc()
		log.Info(LogMsgSessionCompleted, "recipe", recipe.Name)
		if err := s.bus.Publish(ctx, event.NewCraftingCompletedEvent(recipe)); err != nil {
			log.Error(LogMsgPublishFailed, "error", err, "type", domain.EventTypeCraftingCompleted)
		}
	}

	return nil
}

// UseSkillByKey resolves a skill key and delegates to UseSkill
func (s *service) UseSkillByKey(ctx context.Context, key string) error {
	skill, err := s.skills.ByKey(key)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgUnknownSkillKey, "key", key)
		return err
	}
	return s.UseSkill(ctx, skill.ID)
}

// StopCrafting clears the session unconditionally. Idempotent; valid to call
// with no active session.
func (s *service) StopCrafting(ctx context.Context) {
	s.mu.Lock()
	wasActive := s.current.active
	s.current = session{}
	s.mu.Unlock()

	if wasActive {
		logger.FromContext(ctx).Info(LogMsgSessionStopped)
	}
}

// IsCurrentlyCrafting is true iff a session is active and not yet completed
func (s *service) IsCurrentlyCrafting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.active && !s.current.completed
}

// Session returns a read-only snapshot of the current session, if any
func (s *service) Session() (domain.CraftingSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current.active {
		return domain.CraftingSession{}, false
	}
	return domain.CraftingSession{
		RecipeID:    s.current.recipe.ID,
		Progress:    s.current.progress,
		MaxProgress: s.current.recipe.MaxProgress,
		IsActive:    s.current.active,
		IsCompleted: s.current.completed,
	}, true
}
