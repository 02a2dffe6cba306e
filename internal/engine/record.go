package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"flavortown/internal/storage"
)

// recentWindowSize is how many transformation timestamps are kept for the
// speedster check.
const recentWindowSize = 5

type TransformResult struct {
	Era          Era
	Mood         Mood
	PointsEarned int
	Multiplier   float64
	StreakBefore int
	StreakAfter  int
	Stats        *storage.GameStats
}

// RecordTransformation credits one era/mood application to the stats
// ledger and persists the snapshot in a single write. Combo tracking is
// started in the background and is not waited for; see Wait.
func (s *Service) RecordTransformation(ctx context.Context, era Era, mood Mood, bonusPoints int) (*TransformResult, error) {
	if err := validateTheme(era, mood); err != nil {
		return nil, err
	}
	if bonusPoints < 0 {
		return nil, ErrNegativeBonus
	}

	res, err := s.recordLocked(ctx, era, mood, bonusPoints)
	if err != nil {
		return nil, err
	}

	s.log.Debug("transformation recorded",
		zap.String("era", string(era)),
		zap.String("mood", string(mood)),
		zap.Int("points", res.PointsEarned),
		zap.Float64("multiplier", res.Multiplier),
		zap.Int("streak", res.StreakAfter))

	s.goAsync(ctx, "combo", func(ctx context.Context) error {
		isNew, err := s.TrackCombo(ctx, era, mood)
		if err != nil || !isNew {
			return err
		}
		_, err = s.EvaluateAchievements(ctx)
		return err
	})

	return res, nil
}

func (s *Service) recordLocked(ctx context.Context, era Era, mood Mood, bonusPoints int) (*TransformResult, error) {
	unlock := s.lock()
	defer unlock()

	st, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	s.session.rollover(st, now)

	st.EraUsage[string(era)]++
	st.MoodUsage[string(mood)]++
	st.TotalTransformations++
	st.TransformationsInSession++
	st.SessionMoods = appendDistinct(st.SessionMoods, string(mood))
	st.RecentTransformations = appendRecent(st.RecentTransformations, now.UnixMilli(), recentWindowSize)

	mult := Multiplier(st)
	earned := EarnedPoints(bonusPoints, mult)
	st.Points += earned
	st.TotalFriesCollected += earned

	streakBefore := st.CurrentStreak
	UpdateStreak(st, now, s.loc)

	if err := s.stats.Put(ctx, st); err != nil {
		return nil, fmt.Errorf("record transformation: %w", err)
	}

	return &TransformResult{
		Era:          era,
		Mood:         mood,
		PointsEarned: earned,
		Multiplier:   mult,
		StreakBefore: streakBefore,
		StreakAfter:  st.CurrentStreak,
		Stats:        st,
	}, nil
}

func appendDistinct(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

func appendRecent(list []int64, ts int64, size int) []int64 {
	list = append(list, ts)
	if len(list) > size {
		list = list[len(list)-size:]
	}
	return list
}
