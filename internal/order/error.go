package order

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// -- Flow state --
	ErrEmptyCart    = errors.New("cart is empty")
	ErrNotComposing = errors.New("no order is being composed")

	// -- Handoff --
	ErrHandoffFailed = errors.New("order handoff failed")
)

// ValidationError names every required customer field that was empty
// after trimming.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
