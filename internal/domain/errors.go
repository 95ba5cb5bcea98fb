package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Recipe/Skill lookup errors
	ErrMsgRecipeNotFound = "recipe not found"
	ErrMsgSkillNotFound  = "skill not found"

	// Crafting session errors
	ErrMsgNoActiveSession  = "no active crafting session"
	ErrMsgSessionCompleted = "crafting session already completed"

	// Inventory errors
	ErrMsgInvalidQuantity      = "quantity must be positive"
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgStackNotFound        = "stack not found"

	// Wallet errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Recipe book errors
	ErrMsgRecipeNotUnlocked = "recipe is not unlocked"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Lookup errors
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)
	ErrSkillNotFound  = errors.New(ErrMsgSkillNotFound)

	// Crafting session errors
	ErrNoActiveSession  = errors.New(ErrMsgNoActiveSession)
	ErrSessionCompleted = errors.New(ErrMsgSessionCompleted)

	// Inventory errors
	ErrInvalidQuantity      = errors.New(ErrMsgInvalidQuantity)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrStackNotFound        = errors.New(ErrMsgStackNotFound)

	// Wallet errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Recipe book errors
	ErrRecipeNotUnlocked = errors.New(ErrMsgRecipeNotUnlocked)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
