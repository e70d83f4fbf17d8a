package order

import (
	"context"
	"fmt"
	"strings"

	"solestore/internal/cart"
	"solestore/internal/utils"
)

// Service defines the business logic for order composition and handoff.
type Service interface {
	Compose(lines []cart.Line, customer Customer) (string, error)
	Submit(ctx context.Context, message string) error
}

type service struct {
	contact   string
	messenger Messenger
}

// NewService creates an order service bound to the store's fixed
// messaging contact.
func NewService(contact string, messenger Messenger) Service {
	return &service{contact: contact, messenger: messenger}
}

// Compose formats the order summary: a numbered row per line with name,
// quantity and subtotal, the grand total, then the customer's contact
// details. Validation runs first; nothing is composed for an invalid
// customer or an empty cart.
func (s *service) Compose(lines []cart.Line, customer Customer) (string, error) {
	if err := validate(customer); err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New order %s\n\n", utils.GenerateOrderReference())

	var total float64
	for i, l := range lines {
		total += l.Subtotal()
		fmt.Fprintf(&b, "%d. %s x%d - %s\n", i+1, l.Name, l.Quantity, utils.FormatPrice(l.Subtotal()))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n\n", utils.FormatPrice(total))

	fmt.Fprintf(&b, "Name: %s\n", strings.TrimSpace(customer.Name))
	fmt.Fprintf(&b, "Phone: %s\n", strings.TrimSpace(customer.Phone))
	fmt.Fprintf(&b, "Location: %s\n", strings.TrimSpace(customer.Location))

	return b.String(), nil
}

// Submit builds the deep link for the composed message and initiates
// the handoff.
func (s *service) Submit(ctx context.Context, message string) error {
	return s.messenger.Send(ctx, DeepLink(s.contact, message))
}

func validate(c Customer) error {
	var missing []string
	if strings.TrimSpace(c.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(c.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(c.Location) == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
