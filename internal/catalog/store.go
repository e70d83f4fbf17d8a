package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"solestore/internal/logger"

	"go.uber.org/zap"
)

// DefaultPageSize is the initial visible count and the "view more"
// increment when none is configured.
const DefaultPageSize = 4

// Filter selects a catalog view. Style and Search compose with a
// logical AND when both are set.
type Filter struct {
	Style  string
	Search string
}

// Store owns the catalog view state for one page lifecycle: the full
// product sequence, the active filter, and the visible-count cursor.
// It never renders; callers read the visible slice and decide how to
// present it.
type Store struct {
	source   Source
	pageSize int

	products []Product
	filtered []Product
	filter   Filter
	visible  int
	loaded   bool
}

func NewStore(source Source, pageSize int) *Store {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Store{source: source, pageSize: pageSize}
}

// Load fetches the product collection exactly once per store lifetime.
// A fetch or decode failure is logged and leaves the catalog empty;
// the caller keeps a working, empty view instead of crashing.
func (s *Store) Load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	s.loaded = true

	products, err := s.source.Fetch(ctx)
	if err != nil {
		logger.L().Error("catalog load failed", zap.Error(err))
		s.products = nil
		s.ApplyFilter(s.filter)
		return err
	}

	s.products = products
	s.ApplyFilter(s.filter)
	return nil
}

// ApplyFilter recomputes the filtered view and resets the visible-count
// cursor to one page, clamped to the view length. Original relative
// order is always preserved.
func (s *Store) ApplyFilter(f Filter) {
	s.filter = f

	filtered := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if matches(p, f) {
			filtered = append(filtered, p)
		}
	}
	s.filtered = filtered
	s.visible = min(s.pageSize, len(filtered))
}

// VisibleSlice returns the first visible-count products of the current
// filtered view, as a copy.
func (s *Store) VisibleSlice() []Product {
	out := make([]Product, s.visible)
	copy(out, s.filtered[:s.visible])
	return out
}

// Advance grows the visible-count cursor by step (one page when step is
// not positive), clamped to the filtered view length. Idempotent once
// clamped.
func (s *Store) Advance(step int) {
	if step <= 0 {
		step = s.pageSize
	}
	s.visible = min(s.visible+step, len(s.filtered))
}

// HasMore reports whether the cursor is short of the filtered view
// length; it drives the "view more" affordance.
func (s *Store) HasMore() bool {
	return s.visible < len(s.filtered)
}

// VisibleCount is the current cursor position.
func (s *Store) VisibleCount() int { return s.visible }

// Len is the filtered view length.
func (s *Store) Len() int { return len(s.filtered) }

// Get looks a product up by identifier across the full catalog,
// regardless of the active filter.
func (s *Store) Get(id string) (Product, error) {
	for _, p := range s.products {
		if string(p.ID) == id {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
}

func matches(p Product, f Filter) bool {
	if style := strings.TrimSpace(f.Style); style != "" && !hasStyle(p, style) {
		return false
	}
	if query := strings.TrimSpace(f.Search); query != "" && !matchesSearch(p, query) {
		return false
	}
	return true
}

func hasStyle(p Product, style string) bool {
	for _, tag := range p.Styles {
		if strings.EqualFold(tag, style) {
			return true
		}
	}
	return false
}

// matchesSearch mirrors the storefront search box: case-insensitive
// substring on the name, bidirectional containment against each style
// tag (query-in-tag or tag-in-query), and substring on the literal
// decimal string of the price.
func matchesSearch(p Product, query string) bool {
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	for _, tag := range p.Styles {
		t := strings.ToLower(tag)
		if strings.Contains(t, q) || strings.Contains(q, t) {
			return true
		}
	}
	return strings.Contains(strconv.FormatFloat(p.Price, 'f', -1, 64), q)
}
