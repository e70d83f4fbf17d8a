package cart

import (
	"context"
	"fmt"

	"solestore/internal/catalog"
	"solestore/internal/logger"

	"go.uber.org/zap"
)

// Store owns the cart lines for one session. The view layer only ever
// sees copies; authoritative quantities live here and in the persisted
// representation, which is rewritten after every mutation.
type Store struct {
	repo  Repository
	lines []Line
}

// NewStore hydrates the cart from durable storage. Absent or corrupt
// persisted data yields an empty cart; hydration never fails the page.
func NewStore(ctx context.Context, repo Repository) *Store {
	s := &Store{repo: repo}

	lines, err := repo.Load(ctx)
	if err != nil {
		logger.L().Debug("cart hydrate failed, starting empty", zap.Error(err))
		return s
	}
	s.lines = lines
	return s
}

// AddItem increments the quantity of an existing line for the product,
// or appends a new line with quantity 1. At most one line exists per
// product identifier.
func (s *Store) AddItem(ctx context.Context, p catalog.Product) error {
	for i := range s.lines {
		if s.lines[i].ID == p.ID {
			s.lines[i].Quantity++
			return s.persist(ctx)
		}
	}
	s.lines = append(s.lines, Line{Product: p, Quantity: 1})
	return s.persist(ctx)
}

// RemoveItem deletes the line at the given position.
func (s *Store) RemoveItem(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.lines) {
		return fmt.Errorf("%w: %d", ErrLineOutOfRange, index)
	}
	s.lines = append(s.lines[:index], s.lines[index+1:]...)
	return s.persist(ctx)
}

// Increase bumps the quantity of the line at the given position by one.
func (s *Store) Increase(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.lines) {
		return fmt.Errorf("%w: %d", ErrLineOutOfRange, index)
	}
	s.lines[index].Quantity++
	return s.persist(ctx)
}

// Decrease drops the quantity by one; a line at quantity 1 is removed
// rather than kept at zero.
func (s *Store) Decrease(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.lines) {
		return fmt.Errorf("%w: %d", ErrLineOutOfRange, index)
	}
	if s.lines[index].Quantity <= 1 {
		return s.RemoveItem(ctx, index)
	}
	s.lines[index].Quantity--
	return s.persist(ctx)
}

// Total is the sum of price times quantity over all lines; zero for an
// empty cart.
func (s *Store) Total() float64 {
	var total float64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// ItemCount is the badge number: the sum of quantities, distinct from
// the number of lines.
func (s *Store) ItemCount() int {
	var count int
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Len is the number of lines.
func (s *Store) Len() int { return len(s.lines) }

// Lines returns a copy of the ordered line sequence.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Clear empties the cart and removes the persisted representation.
func (s *Store) Clear(ctx context.Context) error {
	s.lines = nil
	return s.repo.Clear(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.lines); err != nil {
		logger.L().Error("cart persist failed", zap.Error(err))
		return err
	}
	return nil
}
