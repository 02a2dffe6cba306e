package storage

import (
	"context"
	"fmt"
)

type StatsRepo struct {
	st Store
}

func NewStatsRepo(st Store) *StatsRepo {
	return &StatsRepo{st: st}
}

// Get returns the stored stats, or nil when none were ever written.
func (r *StatsRepo) Get(ctx context.Context) (*GameStats, error) {
	snap, err := r.st.Get(ctx, KeyStats)
	if err != nil {
		return nil, fmt.Errorf("stats get: %w", err)
	}
	var s GameStats
	ok, err := Decode(snap, KeyStats, &s)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *StatsRepo) Put(ctx context.Context, s *GameStats) error {
	b := NewBatch()
	b.Put(KeyStats, s)
	if err := b.Commit(ctx, r.st); err != nil {
		return fmt.Errorf("stats put: %w", err)
	}
	return nil
}
