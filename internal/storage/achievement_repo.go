package storage

import (
	"context"
	"fmt"
)

type AchievementRepo struct {
	st Store
}

func NewAchievementRepo(st Store) *AchievementRepo {
	return &AchievementRepo{st: st}
}

// List returns the stored achievement list as written, possibly empty.
func (r *AchievementRepo) List(ctx context.Context) ([]Achievement, error) {
	snap, err := r.st.Get(ctx, KeyAchievements)
	if err != nil {
		return nil, fmt.Errorf("achievements get: %w", err)
	}
	var out []Achievement
	if _, err := Decode(snap, KeyAchievements, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Replace persists the full ordered list.
func (r *AchievementRepo) Replace(ctx context.Context, list []Achievement) error {
	b := NewBatch()
	b.Put(KeyAchievements, list)
	if err := b.Commit(ctx, r.st); err != nil {
		return fmt.Errorf("achievements put: %w", err)
	}
	return nil
}
