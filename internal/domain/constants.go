package domain

// Transaction limits
const (
	// MaxTransactionQuantity caps a single add/remove to keep request payloads sane
	MaxTransactionQuantity = 10000
)

// Starting state for a fresh save
const (
	// StarterGold is the wallet balance of a brand-new save
	StarterGold = 0

	// StarterUnlockLevel is the highest UnlockLevel pre-unlocked on a fresh save
	StarterUnlockLevel = 0
)
