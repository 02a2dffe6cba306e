package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"flavortown/internal/storage"
)

// TrackCombo credits a never-seen era/mood pairing toward uniqueCombos. The
// marker and the counter are written together; it reports whether the
// pairing was new.
//
// The check-then-write is serialized only within this process. Two processes
// sharing one state file can both see the marker missing and double count.
func (s *Service) TrackCombo(ctx context.Context, era Era, mood Mood) (bool, error) {
	if err := validateTheme(era, mood); err != nil {
		return false, err
	}

	unlock := s.lock()
	defer unlock()

	seen, err := s.combos.Seen(ctx, string(era), string(mood))
	if err != nil {
		return false, err
	}
	if seen {
		return false, nil
	}

	st, err := s.Stats(ctx)
	if err != nil {
		return false, err
	}
	if st.UniqueCombos < MaxUniqueCombos() {
		st.UniqueCombos++
	}

	b := storage.NewBatch()
	b.Put(storage.KeyStats, st)
	s.combos.Mark(b, string(era), string(mood))
	if err := b.Commit(ctx, s.store); err != nil {
		return false, fmt.Errorf("track combo: %w", err)
	}

	s.log.Debug("new combo",
		zap.String("key", storage.ComboKey(string(era), string(mood))),
		zap.Int("unique_combos", st.UniqueCombos))
	return true, nil
}
