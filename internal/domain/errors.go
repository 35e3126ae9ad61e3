package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvalidInput          = "invalid input"
	ErrMsgItemNotFound          = "item not found"
	ErrMsgRecipeNotFound        = "recipe not found"
	ErrMsgJobNotFound           = "job not found"
	ErrMsgIdentityConflict      = "conflicting catalog identity"
	ErrMsgStoreUnavailable      = "store unavailable"
	ErrMsgTxClosed              = "tx is closed"
	ErrMsgSelfReferencingRecipe = "recipe cannot use its own result as an ingredient"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrRecipeNotFound   = errors.New(ErrMsgRecipeNotFound)
	ErrJobNotFound      = errors.New(ErrMsgJobNotFound)
	ErrIdentityConflict = errors.New(ErrMsgIdentityConflict)
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)
)
