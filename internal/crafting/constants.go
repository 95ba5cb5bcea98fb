package crafting

// Log messages
const (
	LogMsgStartNilRecipe     = "StartCrafting called with nil recipe"
	LogMsgSessionStarted     = "Crafting session started"
	LogMsgSessionCompleted   = "Crafting session completed"
	LogMsgSessionStopped     = "Crafting session stopped"
	LogMsgSkillUsed          = "Skill applied to session"
	LogMsgSkillNoSession     = "Skill used with no active session"
	LogMsgSkillAfterComplete = "Skill used on completed session"
	LogMsgUnknownSkill       = "Unknown skill id"
	LogMsgUnknownSkillKey    = "Unknown skill key"
	LogMsgPublishFailed      = "Failed to publish event"
)
