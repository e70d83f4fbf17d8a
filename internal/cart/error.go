package cart

import "errors"

var (
	// -- Validation & Input --
	ErrLineOutOfRange = errors.New("cart line index out of range")

	// -- Storage failures --
	ErrCorruptCart     = errors.New("corrupt persisted cart")
	ErrFailedLoadCart  = errors.New("failed to load cart")
	ErrFailedSaveCart  = errors.New("failed to save cart")
	ErrFailedClearCart = errors.New("failed to clear cart")
)
