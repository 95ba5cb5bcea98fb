package domain

import "time"

// Difficulty represents the crafting difficulty tier of a recipe
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
	DifficultyMaster Difficulty = "MASTER"
)

// KnownDifficulties lists every valid difficulty tier, in ascending order
var KnownDifficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
	DifficultyMaster,
}

// Valid reports whether d is a known difficulty tier
func (d Difficulty) Valid() bool {
	for _, known := range KnownDifficulties {
		if d == known {
			return true
		}
	}
	return false
}

// Recipe represents a craftable item definition. Recipes are immutable once
// loaded; the catalog hands out pointers that must not be mutated.
type Recipe struct {
	ID          int        `json:"recipe_id"`
	Name        string     `json:"name"`
	Materials   []string   `json:"materials"`
	Description string     `json:"description"`
	MaxProgress int        `json:"max_progress"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    string     `json:"category"`
	UnlockLevel int        `json:"unlock_level"`
	Value       int        `json:"value"`
	SellPrice   int        `json:"sell_price"`
}

// RecipeBookEntry tracks unlock and completion state for a single recipe
type RecipeBookEntry struct {
	RecipeID       int       `json:"recipe_id"`
	DateUnlocked   time.Time `json:"date_unlocked"`
	TimesCompleted int       `json:"times_completed"`
	Favorite       bool      `json:"favorite"`
}
