package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"solestore/internal/storage"
)

// storageKey is the single named key the serialized cart lives under.
const storageKey = "cart"

// Repository persists the ordered cart line sequence between sessions.
type Repository interface {
	Load(ctx context.Context) ([]Line, error)
	Save(ctx context.Context, lines []Line) error
	Clear(ctx context.Context) error
}

type repository struct {
	store *storage.Store
}

// NewRepository creates a cart repository over the local key-value
// store. The whole line sequence is serialized as one JSON value.
func NewRepository(store *storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Load(ctx context.Context) ([]Line, error) {
	raw, ok, err := r.store.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadCart, err)
	}
	if !ok {
		return nil, nil
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCart, err)
	}
	return lines, nil
}

func (r *repository) Save(ctx context.Context, lines []Line) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}
	if err := r.store.Set(ctx, storageKey, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}
	return nil
}

func (r *repository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, storageKey); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedClearCart, err)
	}
	return nil
}
