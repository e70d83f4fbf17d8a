package order

import (
	"context"

	"solestore/internal/cart"
	"solestore/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Flow drives the checkout state machine: Idle until an order intent
// arrives, Composing while customer details are collected, back to
// Idle once the handoff succeeds and the cart is cleared.
type Flow struct {
	id    string
	svc   Service
	cart  *cart.Store
	state State
}

func NewFlow(svc Service, cartStore *cart.Store) *Flow {
	return &Flow{id: uuid.NewString(), svc: svc, cart: cartStore}
}

// State is the current flow position.
func (f *Flow) State() State { return f.state }

// Begin moves to Composing. Order intent on an empty cart is refused
// and the flow stays Idle.
func (f *Flow) Begin() error {
	if f.cart.Len() == 0 {
		return ErrEmptyCart
	}
	f.state = StateComposing
	return nil
}

// Submit composes the order, hands the message off, and clears the
// cart. Any failure keeps the flow in Composing and the cart untouched.
func (f *Flow) Submit(ctx context.Context, customer Customer) (string, error) {
	if f.state != StateComposing {
		return "", ErrNotComposing
	}

	log := logger.L().With(zap.String("checkout_session", f.id))

	message, err := f.svc.Compose(f.cart.Lines(), customer)
	if err != nil {
		log.Warn("order composition failed", zap.Error(err))
		return "", err
	}

	if err := f.svc.Submit(ctx, message); err != nil {
		log.Error("order handoff failed", zap.Error(err))
		return "", err
	}

	lines := f.cart.Len()
	if err := f.cart.Clear(ctx); err != nil {
		// the order is already handed off; a stale persisted cart is
		// the lesser failure
		log.Error("failed to clear cart after handoff", zap.Error(err))
	}
	f.state = StateIdle

	log.Info("order submitted", zap.Int("lines", lines))
	return message, nil
}
