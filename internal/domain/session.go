package domain

// CraftingSession is a read-only snapshot of the single in-progress crafting
// attempt. The engine owns the live session; accessors hand out copies.
type CraftingSession struct {
	RecipeID    int  `json:"recipe_id"`
	Progress    int  `json:"progress"`
	MaxProgress int  `json:"max_progress"`
	IsActive    bool `json:"is_active"`
	IsCompleted bool `json:"is_completed"`
}
