package engine

import (
	"context"
	"math/rand/v2"

	"go.uber.org/zap"

	"flavortown/internal/storage"
)

type ApplyResult struct {
	Transform *TransformResult
	Unlocked  []storage.Achievement
}

// ApplyTheme makes era/mood the current theme, credits the transformation
// and evaluates achievements against the new stats.
func (s *Service) ApplyTheme(ctx context.Context, era Era, mood Mood) (*ApplyResult, error) {
	return s.applyWithBonus(ctx, era, mood, 0)
}

// ApplyRandom applies a uniformly chosen era and mood.
func (s *Service) ApplyRandom(ctx context.Context, rng *rand.Rand) (*ApplyResult, error) {
	era := Eras[rng.IntN(len(Eras))]
	mood := Moods[rng.IntN(len(Moods))]
	s.log.Debug("random theme picked", zap.String("era", string(era)), zap.String("mood", string(mood)))
	return s.ApplyTheme(ctx, era, mood)
}

func (s *Service) applyWithBonus(ctx context.Context, era Era, mood Mood, bonus int) (*ApplyResult, error) {
	if err := validateTheme(era, mood); err != nil {
		return nil, err
	}
	if err := s.prefs.SetCurrent(ctx, string(era), string(mood)); err != nil {
		return nil, err
	}

	// The background combo task may evaluate before we do, so unlocks are
	// measured against the list as it was before this transformation.
	before, err := s.Achievements(ctx)
	if err != nil {
		return nil, err
	}
	tr, err := s.RecordTransformation(ctx, era, mood, bonus)
	if err != nil {
		return nil, err
	}
	if _, err := s.EvaluateAchievements(ctx); err != nil {
		return nil, err
	}
	after, err := s.Achievements(ctx)
	if err != nil {
		return nil, err
	}
	return &ApplyResult{Transform: tr, Unlocked: NewlyUnlocked(before, after)}, nil
}

func (s *Service) SetRandomMode(ctx context.Context, on bool) error {
	return s.prefs.SetRandomMode(ctx, on)
}

// Prefs returns the presentation state. An unset era or mood reads back
// empty.
func (s *Service) Prefs(ctx context.Context) (*storage.Prefs, error) {
	return s.prefs.Get(ctx)
}
