package storage

import (
	"context"
	"fmt"
)

type ChallengeRepo struct {
	st Store
}

func NewChallengeRepo(st Store) *ChallengeRepo {
	return &ChallengeRepo{st: st}
}

// Get returns the current challenge, or nil when none is stored.
func (r *ChallengeRepo) Get(ctx context.Context) (*DailyChallenge, error) {
	snap, err := r.st.Get(ctx, KeyDailyChallenge)
	if err != nil {
		return nil, fmt.Errorf("challenge get: %w", err)
	}
	var c DailyChallenge
	ok, err := Decode(snap, KeyDailyChallenge, &c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Put replaces the stored challenge.
func (r *ChallengeRepo) Put(ctx context.Context, c *DailyChallenge) error {
	b := NewBatch()
	b.Put(KeyDailyChallenge, c)
	if err := b.Commit(ctx, r.st); err != nil {
		return fmt.Errorf("challenge put: %w", err)
	}
	return nil
}
