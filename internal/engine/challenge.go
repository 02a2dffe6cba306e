package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"flavortown/internal/storage"
)

// ChallengeBonus is the bonus awarded for completing a daily challenge.
const ChallengeBonus = 50

type challengePreset struct {
	Era  Era
	Mood Mood
	Name string
}

// challengePresets rotate by day of year. The order is fixed: changing it
// changes which challenge a given date gets.
var challengePresets = []challengePreset{
	{EraMedieval, MoodAdventurous, "⚔️ Medieval Adventure"},
	{EraDiner, MoodNostalgic, "🕰️ Retro Nostalgia"},
	{EraSpace, MoodEnergetic, "⚡ Cosmic Energy"},
	{EraMedieval, MoodMysterious, "🔮 Medieval Mystery"},
	{EraDiner, MoodAdventurous, "🍔 Brave New Diner"},
	{EraSpace, MoodMysterious, "🌌 Space Secrets"},
	{EraMedieval, MoodNostalgic, "📜 Ancient Memories"},
	{EraDiner, MoodEnergetic, "⚡ Diner Lightning"},
}

// presetFor returns the preset for the calendar day of t in loc.
func presetFor(t time.Time, loc *time.Location) challengePreset {
	return challengePresets[t.In(loc).YearDay()%len(challengePresets)]
}

// ChallengeDisplayName returns the preset label for an era/mood pairing, or
// "<era> - <mood>" when no preset matches.
func ChallengeDisplayName(era, mood string) string {
	for _, p := range challengePresets {
		if string(p.Era) == era && string(p.Mood) == mood {
			return p.Name
		}
	}
	return era + " - " + mood
}

// TodayChallenge returns the stored challenge when it is for today, and
// otherwise generates and persists today's preset. Concurrent callers share
// one generation.
func (s *Service) TodayChallenge(ctx context.Context) (*storage.DailyChallenge, error) {
	now := s.now()
	today := DateString(now, s.loc)

	v, err, _ := s.challenge.Do(today, func() (any, error) {
		unlock := s.lock()
		defer unlock()

		stored, err := s.challenges.Get(ctx)
		if err != nil {
			return nil, err
		}
		if stored != nil && stored.Date == today {
			return stored, nil
		}

		p := presetFor(now, s.loc)
		c := &storage.DailyChallenge{
			Date:        today,
			Era:         string(p.Era),
			Mood:        string(p.Mood),
			BonusPoints: ChallengeBonus,
		}
		if err := s.challenges.Put(ctx, c); err != nil {
			return nil, fmt.Errorf("generate challenge: %w", err)
		}
		s.log.Debug("daily challenge generated", zap.String("date", today), zap.String("name", p.Name))
		return c, nil
	})
	if err != nil {
		return nil, err
	}

	c := *v.(*storage.DailyChallenge)
	return &c, nil
}

// CompleteDailyChallenge marks the stored challenge completed and returns its
// bonus. It returns 0 when there is no challenge or it was already completed.
// It does not check the challenge's date.
func (s *Service) CompleteDailyChallenge(ctx context.Context) (int, error) {
	unlock := s.lock()
	defer unlock()

	snap, err := s.store.Get(ctx, storage.KeyDailyChallenge, storage.KeyStats)
	if err != nil {
		return 0, fmt.Errorf("complete challenge: %w", err)
	}

	var c storage.DailyChallenge
	ok, err := storage.Decode(snap, storage.KeyDailyChallenge, &c)
	if err != nil {
		return 0, err
	}
	if !ok || c.Completed {
		return 0, nil
	}

	var st *storage.GameStats
	var loaded storage.GameStats
	found, err := storage.Decode(snap, storage.KeyStats, &loaded)
	if err != nil {
		return 0, err
	}
	if found {
		st = &loaded
	}
	st = s.normalizeStats(st)

	c.Completed = true
	st.DailyChallengesCompleted++

	b := storage.NewBatch()
	b.Put(storage.KeyDailyChallenge, &c)
	b.Put(storage.KeyStats, st)
	if err := b.Commit(ctx, s.store); err != nil {
		return 0, fmt.Errorf("complete challenge: %w", err)
	}

	s.log.Info("daily challenge completed",
		zap.String("date", c.Date),
		zap.Int("bonus", c.BonusPoints),
		zap.Int("completed_total", st.DailyChallengesCompleted))
	return c.BonusPoints, nil
}

// ChallengeOutcome is the result of CompleteChallengeAndRecord.
type ChallengeOutcome struct {
	Challenge *storage.DailyChallenge
	Bonus     int
	Apply     *ApplyResult // nil when no bonus was awarded
}

// CompleteChallengeAndRecord completes today's challenge and, when a bonus
// was awarded, applies the challenge's era and mood with that bonus.
func (s *Service) CompleteChallengeAndRecord(ctx context.Context) (*ChallengeOutcome, error) {
	c, err := s.TodayChallenge(ctx)
	if err != nil {
		return nil, err
	}
	bonus, err := s.CompleteDailyChallenge(ctx)
	if err != nil {
		return nil, err
	}
	c.Completed = true

	out := &ChallengeOutcome{Challenge: c, Bonus: bonus}
	if bonus == 0 {
		return out, nil
	}

	era, err := ParseEra(c.Era)
	if err != nil {
		return nil, err
	}
	mood, err := ParseMood(c.Mood)
	if err != nil {
		return nil, err
	}
	out.Apply, err = s.applyWithBonus(ctx, era, mood, bonus)
	if err != nil {
		return nil, err
	}
	return out, nil
}
