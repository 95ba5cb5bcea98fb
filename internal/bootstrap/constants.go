package bootstrap

// Log messages
const (
	LogMsgCraftDeposited = "Crafted item deposited"
	LogMsgDepositFailed  = "Failed to deposit crafted item"
	LogMsgUnlockFailed   = "Failed to unlock recipe after craft"
	LogMsgCompleteFailed = "Failed to record recipe completion"
	LogMsgAutosaveFailed = "Autosave failed"
)

// Error messages
const (
	ErrMsgUnexpectedPayload = "unexpected crafting completion payload"
)
