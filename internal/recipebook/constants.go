package recipebook

// Log messages
const (
	LogMsgRecipeUnlocked  = "Recipe unlocked"
	LogMsgRecipeCompleted = "Recipe completion recorded"
	LogMsgCompleteLocked  = "Completion rejected, recipe not unlocked"
	LogMsgFavoriteToggled = "Recipe favorite toggled"
	LogMsgPublishFailed   = "Failed to publish event"
)
