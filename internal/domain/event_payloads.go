package domain

// Typed event payloads shared between publishers and subscribers.
// Versioned by suffix; bump the suffix when a payload's shape changes.

// CraftingCompletedPayloadV1 is published exactly once per completed session
type CraftingCompletedPayloadV1 struct {
	RecipeID   int    `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
	Timestamp  int64  `json:"timestamp"`
}

// CraftingProgressPayloadV1 is published whenever session progress changes.
// Delta is the post-clamp increment and may be less than the skill's nominal
// bonus when the session completes.
type CraftingProgressPayloadV1 struct {
	RecipeID    int `json:"recipe_id"`
	Progress    int `json:"progress"`
	MaxProgress int `json:"max_progress"`
	Delta       int `json:"delta"`
}

// ItemAddedPayloadV1 is published after a stack gains quantity
type ItemAddedPayloadV1 struct {
	RecipeID int     `json:"recipe_id"`
	Quantity int     `json:"quantity"`
	Quality  Quality `json:"quality"`
	NewTotal int     `json:"new_total"`
}

// ItemRemovedPayloadV1 is published after a stack loses quantity
type ItemRemovedPayloadV1 struct {
	RecipeID int     `json:"recipe_id"`
	Quantity int     `json:"quantity"`
	Quality  Quality `json:"quality"`
	NewTotal int     `json:"new_total"`
}

// ItemSoldPayloadV1 is published after a completed guild sale
type ItemSoldPayloadV1 struct {
	RecipeID   int    `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
	Quantity   int    `json:"quantity"`
	GoldGained int    `json:"gold_gained"`
	Timestamp  int64  `json:"timestamp"`
}

// RecipeUnlockedPayloadV1 is published the first time a recipe is unlocked
type RecipeUnlockedPayloadV1 struct {
	RecipeID int `json:"recipe_id"`
}

// RecipeCompletedPayloadV1 is published each time a book completion is recorded
type RecipeCompletedPayloadV1 struct {
	RecipeID       int `json:"recipe_id"`
	TimesCompleted int `json:"times_completed"`
}
