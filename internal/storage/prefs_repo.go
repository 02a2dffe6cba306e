package storage

import (
	"context"
	"fmt"
)

type PrefsRepo struct {
	st Store
}

func NewPrefsRepo(st Store) *PrefsRepo {
	return &PrefsRepo{st: st}
}

func (r *PrefsRepo) Get(ctx context.Context) (*Prefs, error) {
	snap, err := r.st.Get(ctx, KeyCurrentEra, KeyCurrentMood, KeyRandomMode)
	if err != nil {
		return nil, fmt.Errorf("prefs get: %w", err)
	}
	var p Prefs
	if _, err := Decode(snap, KeyCurrentEra, &p.CurrentEra); err != nil {
		return nil, err
	}
	if _, err := Decode(snap, KeyCurrentMood, &p.CurrentMood); err != nil {
		return nil, err
	}
	if _, err := Decode(snap, KeyRandomMode, &p.RandomMode); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PrefsRepo) SetCurrent(ctx context.Context, era, mood string) error {
	b := NewBatch()
	b.Put(KeyCurrentEra, era)
	b.Put(KeyCurrentMood, mood)
	if err := b.Commit(ctx, r.st); err != nil {
		return fmt.Errorf("prefs set current: %w", err)
	}
	return nil
}

func (r *PrefsRepo) SetRandomMode(ctx context.Context, on bool) error {
	b := NewBatch()
	b.Put(KeyRandomMode, on)
	if err := b.Commit(ctx, r.st); err != nil {
		return fmt.Errorf("prefs set random mode: %w", err)
	}
	return nil
}
