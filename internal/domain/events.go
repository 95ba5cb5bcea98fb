package domain

// EventType identifies a domain event published on the bus
type EventType string

const (
	EventTypeCraftingCompleted EventType = "crafting.completed"
	EventTypeCraftingProgress  EventType = "crafting.progress"
	EventTypeItemAdded         EventType = "item.added"
	EventTypeItemRemoved       EventType = "item.removed"
	EventTypeItemSold          EventType = "item.sold"
	EventTypeRecipeUnlocked    EventType = "recipe.unlocked"
	EventTypeRecipeCompleted   EventType = "recipe.completed"
)
