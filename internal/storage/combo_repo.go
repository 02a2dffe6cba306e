package storage

import (
	"context"
	"fmt"
)

type ComboRepo struct {
	st Store
}

func NewComboRepo(st Store) *ComboRepo {
	return &ComboRepo{st: st}
}

// Seen reports whether the marker for era/mood is set.
func (r *ComboRepo) Seen(ctx context.Context, era, mood string) (bool, error) {
	key := ComboKey(era, mood)
	snap, err := r.st.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("combo get: %w", err)
	}
	var seen bool
	if _, err := Decode(snap, key, &seen); err != nil {
		return false, err
	}
	return seen, nil
}

// Mark stages the marker for era/mood into b.
func (r *ComboRepo) Mark(b *Batch, era, mood string) {
	b.Put(ComboKey(era, mood), true)
}
