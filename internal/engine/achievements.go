package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"flavortown/internal/storage"
)

const (
	AchievementMedievalMaster  = "medieval_master"
	AchievementDinerDevotee    = "diner_devotee"
	AchievementSpaceExplorer   = "space_explorer"
	AchievementMoodMaster      = "mood_master"
	AchievementFriesCollector  = "fries_collector"
	AchievementSpeedster       = "speedster"
	AchievementComboKing       = "combo_king"
	AchievementDailyChampion   = "daily_champion"
	AchievementRainbowExplorer = "rainbow_explorer"
	AchievementFriesKing       = "fries_king"
)

// SpeedsterWindow is the span in which SpeedsterCount transformations earn
// the speedster badge.
const (
	SpeedsterWindow = 5 * time.Minute
	SpeedsterCount  = 5
)

type achievementDef struct {
	id, name, desc, icon string
	earned               func(s *storage.GameStats) bool
}

// achievementCatalog is the fixed catalog in display order. The order is
// persisted, so append new entries at the end.
var achievementCatalog = []achievementDef{
	{AchievementMedievalMaster, "Medieval Master", "Use Medieval Era 10 times", "🏰", eraUsageAtLeast(EraMedieval, 10)},
	{AchievementDinerDevotee, "Diner Devotee", "Use Retro Diner 10 times", "🍔", eraUsageAtLeast(EraDiner, 10)},
	{AchievementSpaceExplorer, "Space Explorer", "Use Futuristic Space 10 times", "🚀", eraUsageAtLeast(EraSpace, 10)},
	{AchievementMoodMaster, "Mood Master", "Try all 4 moods in one session", "🎭", allMoodsThisSession},
	{AchievementFriesCollector, "Golden Fries Collector", "Collect 500 golden fries", "🍟", pointsAtLeast(500)},
	{AchievementSpeedster, "Speedster", "Apply 5 transformations in 5 minutes", "⚡", rapidFire},
	{AchievementComboKing, "Combo King", "Try 10 different era/mood combinations", "👑", func(s *storage.GameStats) bool { return s.UniqueCombos >= 10 }},
	{AchievementDailyChampion, "Daily Champion", "Complete daily challenge 5 times", "🏆", func(s *storage.GameStats) bool { return s.DailyChallengesCompleted >= 5 }},
	{AchievementRainbowExplorer, "Rainbow Explorer", "Achieve 7-day streak", "🌈", func(s *storage.GameStats) bool { return s.CurrentStreak >= 7 }},
	{AchievementFriesKing, "Fries King", "Collect 2000 golden fries", "🍟👑", pointsAtLeast(2000)},
}

func eraUsageAtLeast(era Era, n int) func(*storage.GameStats) bool {
	return func(s *storage.GameStats) bool { return s.EraUsage[string(era)] >= n }
}

func pointsAtLeast(n int) func(*storage.GameStats) bool {
	return func(s *storage.GameStats) bool { return s.Points >= n }
}

func allMoodsThisSession(s *storage.GameStats) bool {
	seen := map[string]bool{}
	for _, m := range s.SessionMoods {
		seen[m] = true
	}
	for _, m := range Moods {
		if !seen[string(m)] {
			return false
		}
	}
	return true
}

func rapidFire(s *storage.GameStats) bool {
	n := len(s.RecentTransformations)
	if n < SpeedsterCount {
		return false
	}
	first := s.RecentTransformations[n-SpeedsterCount]
	last := s.RecentTransformations[n-1]
	return last-first <= SpeedsterWindow.Milliseconds()
}

// AchievementCatalog returns every achievement, locked, in catalog order.
func AchievementCatalog() []storage.Achievement {
	out := make([]storage.Achievement, len(achievementCatalog))
	for i, d := range achievementCatalog {
		out[i] = storage.Achievement{ID: d.id, Name: d.name, Description: d.desc, Icon: d.icon}
	}
	return out
}

// NormalizeAchievements maps a stored list onto the catalog: catalog order,
// catalog texts, stored unlock state. Unknown ids are dropped.
func NormalizeAchievements(stored []storage.Achievement) []storage.Achievement {
	byID := make(map[string]storage.Achievement, len(stored))
	for _, a := range stored {
		byID[a.ID] = a
	}
	out := AchievementCatalog()
	for i := range out {
		if prev, ok := byID[out[i].ID]; ok && prev.Unlocked {
			out[i].Unlocked = true
			out[i].UnlockedAt = prev.UnlockedAt
		}
	}
	return out
}

// CheckAchievements unlocks every achievement whose rule holds for stats.
// It does not modify current; the returned list keeps its order. Unlocked
// entries are never re-locked and keep their unlockedAt.
func CheckAchievements(stats *storage.GameStats, current []storage.Achievement, now time.Time) []storage.Achievement {
	rules := make(map[string]func(*storage.GameStats) bool, len(achievementCatalog))
	for _, d := range achievementCatalog {
		rules[d.id] = d.earned
	}

	ts := now.UnixMilli()
	out := make([]storage.Achievement, len(current))
	copy(out, current)
	for i := range out {
		if out[i].Unlocked {
			continue
		}
		rule, ok := rules[out[i].ID]
		if !ok || !rule(stats) {
			continue
		}
		at := ts
		out[i].Unlocked = true
		out[i].UnlockedAt = &at
	}
	return out
}

// NewlyUnlocked returns the entries of after that were locked (or absent)
// in before.
func NewlyUnlocked(before, after []storage.Achievement) []storage.Achievement {
	was := make(map[string]bool, len(before))
	for _, a := range before {
		was[a.ID] = a.Unlocked
	}
	var out []storage.Achievement
	for _, a := range after {
		if a.Unlocked && !was[a.ID] {
			out = append(out, a)
		}
	}
	return out
}

// Achievements returns the persisted list in catalog order.
func (s *Service) Achievements(ctx context.Context) ([]storage.Achievement, error) {
	stored, err := s.achievements.List(ctx)
	if err != nil {
		return nil, err
	}
	return NormalizeAchievements(stored), nil
}

// EvaluateAchievements runs the evaluator against the current stats,
// persists the full list and returns the newly unlocked entries.
func (s *Service) EvaluateAchievements(ctx context.Context) ([]storage.Achievement, error) {
	unlock := s.lock()
	defer unlock()

	snap, err := s.store.Get(ctx, storage.KeyStats, storage.KeyAchievements)
	if err != nil {
		return nil, fmt.Errorf("evaluate achievements: %w", err)
	}
	var st *storage.GameStats
	var loaded storage.GameStats
	ok, err := storage.Decode(snap, storage.KeyStats, &loaded)
	if err != nil {
		return nil, err
	}
	if ok {
		st = &loaded
	}
	st = s.normalizeStats(st)

	var stored []storage.Achievement
	if _, err := storage.Decode(snap, storage.KeyAchievements, &stored); err != nil {
		return nil, err
	}
	before := NormalizeAchievements(stored)
	after := CheckAchievements(st, before, s.now())

	if err := s.achievements.Replace(ctx, after); err != nil {
		return nil, err
	}

	newly := NewlyUnlocked(before, after)
	for _, a := range newly {
		s.log.Info("achievement unlocked", zap.String("id", a.ID), zap.String("name", a.Name))
	}
	return newly, nil
}
