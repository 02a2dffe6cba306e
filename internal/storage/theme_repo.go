package storage

import (
	"context"
	"fmt"
)

type ThemeRepo struct {
	st Store
}

func NewThemeRepo(st Store) *ThemeRepo {
	return &ThemeRepo{st: st}
}

func (r *ThemeRepo) ListAll(ctx context.Context) ([]CustomTheme, error) {
	snap, err := r.st.Get(ctx, KeyCustomThemes)
	if err != nil {
		return nil, fmt.Errorf("themes get: %w", err)
	}
	var out []CustomTheme
	if _, err := Decode(snap, KeyCustomThemes, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ThemeRepo) Replace(ctx context.Context, themes []CustomTheme) error {
	if themes == nil {
		themes = []CustomTheme{}
	}
	b := NewBatch()
	b.Put(KeyCustomThemes, themes)
	if err := b.Commit(ctx, r.st); err != nil {
		return fmt.Errorf("themes put: %w", err)
	}
	return nil
}
