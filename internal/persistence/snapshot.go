package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tindwyr/crafthall/internal/catalog"
	"github.com/tindwyr/crafthall/internal/domain"
)

// SnapshotVersion is the schema version written into every save
const SnapshotVersion = "1.0"

// Snapshot is the logical save state: the full inventory ledger plus the
// recipe book. Crafting sessions are deliberately transient and never saved.
type Snapshot struct {
	Version string                   `json:"version"`
	SavedAt time.Time                `json:"saved_at"`
	Stacks  []domain.InventoryStack  `json:"stacks"`
	Gold    int                      `json:"gold"`
	Entries []domain.RecipeBookEntry `json:"entries"`
}

// Serialize encodes the snapshot as JSON
func Serialize(s *Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSerializeFailed, err)
	}
	return data, nil
}

// Deserialize decodes a snapshot from JSON. Decoding success does not imply
// the state is acceptable; run Validate before applying it.
func Deserialize(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDeserializeFailed, err)
	}
	return &s, nil
}

// Validate checks a decoded snapshot against the ledger and book invariants.
// It returns every issue found rather than stopping at the first.
func Validate(s *Snapshot, recipes *catalog.RecipeCatalog) []string {
	var issues []string
	addf := func(format string, args ...any) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	if s.Gold < 0 {
		addf("gold is negative: %d", s.Gold)
	}

	seenStacks := make(map[string]bool)
	for i, stack := range s.Stacks {
		if stack.Quantity <= 0 {
			addf("stack %d: non-positive quantity %d", i, stack.Quantity)
		}
		if !stack.Quality.Valid() {
			addf("stack %d: unknown quality %q", i, stack.Quality)
		}
		if _, err := recipes.ByID(stack.RecipeID); err != nil {
			addf("stack %d: unknown recipe %d", i, stack.RecipeID)
		}
		key := fmt.Sprintf("%d/%s", stack.RecipeID, stack.Quality)
		if seenStacks[key] {
			addf("stack %d: duplicate recipe/quality pair %s", i, key)
		}
		seenStacks[key] = true
	}

	seenEntries := make(map[int]bool)
	for i, entry := range s.Entries {
		if entry.TimesCompleted < 0 {
			addf("entry %d: negative completion count %d", i, entry.TimesCompleted)
		}
		if _, err := recipes.ByID(entry.RecipeID); err != nil {
			addf("entry %d: unknown recipe %d", i, entry.RecipeID)
		}
		if seenEntries[entry.RecipeID] {
			addf("entry %d: duplicate recipe %d", i, entry.RecipeID)
		}
		seenEntries[entry.RecipeID] = true
	}

	return issues
}

// Starter builds the fresh-character state: empty bag, no gold, and every
// recipe the catalog marks as available from level zero already unlocked.
func Starter(recipes *catalog.RecipeCatalog, now time.Time) *Snapshot {
	s := &Snapshot{
		Version: SnapshotVersion,
		SavedAt: now,
		Gold:    domain.StarterGold,
	}
	for _, recipe := range recipes.All() {
		if recipe.UnlockLevel == domain.StarterUnlockLevel {
			s.Entries = append(s.Entries, domain.RecipeBookEntry{
				RecipeID:     recipe.ID,
				DateUnlocked: now,
			})
		}
	}
	return s
}
