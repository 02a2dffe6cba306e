package engine

import (
	"context"
	"errors"
	"math/rand/v2"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"flavortown/internal/storage"
)

// testClock is a settable clock for Options.Now.
type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

var testStart = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, st storage.Store) (*Service, *testClock) {
	t.Helper()
	clock := &testClock{t: testStart}
	sess := NewSession(testStart)
	svc := NewService(Options{
		Store:    st,
		Session:  &sess,
		Location: time.UTC,
		Now:      clock.Now,
	})
	t.Cleanup(svc.Wait)
	return svc, clock
}

func newSQLiteService(t *testing.T) (*Service, *testClock) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	db, err := storage.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return newTestService(t, storage.NewSQLiteStore(db, path))
}

func record(t *testing.T, svc *Service, era Era, mood Mood) *TransformResult {
	t.Helper()
	res, err := svc.RecordTransformation(context.Background(), era, mood, 0)
	require.NoError(t, err)
	return res
}

func unlockedIDs(list []storage.Achievement) []string {
	var out []string
	for _, a := range list {
		if a.Unlocked {
			out = append(out, a.ID)
		}
	}
	return out
}

func TestMultiplier(t *testing.T) {
	cases := []struct {
		streak, session int
		want            float64
	}{
		{0, 0, 1},
		{0, 4, 1},
		{0, 5, 1.15},
		{3, 0, 1.3},
		{10, 0, 2},
		{25, 0, 2},
		{10, 10, 2.3},
	}
	for _, tc := range cases {
		got := Multiplier(&storage.GameStats{CurrentStreak: tc.streak, TransformationsInSession: tc.session})
		assert.InDelta(t, tc.want, got, 1e-9, "streak=%d session=%d", tc.streak, tc.session)
	}

	assert.Equal(t, 11, ApplyMultiplier(10, 1.15))
	assert.Equal(t, 11, EarnedPoints(0, 1.1))
	assert.Equal(t, 60, EarnedPoints(ChallengeBonus, 1))
}

func TestRecordTransformation_CountersOnlyGrow(t *testing.T) {
	svc, clock := newSQLiteService(t)
	ctx := context.Background()

	prev := svc.DefaultStats()
	for i := 0; i < 12; i++ {
		era := Eras[i%len(Eras)]
		mood := Moods[i%len(Moods)]
		res := record(t, svc, era, mood)
		cur := res.Stats

		assert.Greater(t, cur.TotalTransformations, prev.TotalTransformations)
		assert.Greater(t, cur.EraUsage[string(era)], prev.EraUsage[string(era)])
		assert.Greater(t, cur.MoodUsage[string(mood)], prev.MoodUsage[string(mood)])
		assert.Greater(t, cur.Points, prev.Points)
		assert.Greater(t, cur.TotalFriesCollected, prev.TotalFriesCollected)
		assert.GreaterOrEqual(t, cur.LongestStreak, cur.CurrentStreak)

		prev = cur
		clock.Advance(7 * time.Hour)
	}
	svc.Wait()

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, st.TotalTransformations)
	assert.Equal(t, st.Points, st.TotalFriesCollected)
}

func TestRecordTransformation_PointsUseStreakBeforeUpdate(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemoryStore())

	first := record(t, svc, EraSpace, MoodEnergetic)
	assert.Equal(t, 10, first.PointsEarned)
	assert.Equal(t, 0, first.StreakBefore)
	assert.Equal(t, 1, first.StreakAfter)

	second := record(t, svc, EraSpace, MoodEnergetic)
	assert.Equal(t, 11, second.PointsEarned)
	assert.InDelta(t, 1.1, second.Multiplier, 1e-9)
}

func TestRecordTransformation_SessionBurst(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemoryStore())

	var last *TransformResult
	for i := 0; i < 5; i++ {
		last = record(t, svc, EraDiner, MoodNostalgic)
	}
	// Fifth call: streak 1 and one full burst.
	assert.InDelta(t, 1.25, last.Multiplier, 1e-9)
	assert.Equal(t, 12, last.PointsEarned)
}

func TestRecordTransformation_RejectsBadInput(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.RecordTransformation(ctx, "kawaii", MoodNostalgic, 0)
	var invalid InvalidThemeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "era", invalid.Kind)

	_, err = svc.RecordTransformation(ctx, EraDiner, "sleepy", 0)
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "mood", invalid.Kind)

	_, err = svc.RecordTransformation(ctx, EraDiner, MoodNostalgic, -1)
	assert.ErrorIs(t, err, ErrNegativeBonus)
}

func TestRecordTransformation_FailedWriteKeepsState(t *testing.T) {
	mem := storage.NewMemoryStore()
	svc, _ := newTestService(t, mem)
	ctx := context.Background()

	record(t, svc, EraMedieval, MoodAdventurous)
	svc.Wait()
	before, err := svc.Stats(ctx)
	require.NoError(t, err)

	mem.FailWrites = true
	_, err = svc.RecordTransformation(ctx, EraMedieval, MoodAdventurous, 0)
	require.Error(t, err)
	mem.FailWrites = false

	after, err := svc.Stats(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("stats changed after failed write (-before +after):\n%s", diff)
	}
}

func TestStreak(t *testing.T) {
	svc, clock := newTestService(t, storage.NewMemoryStore())

	assert.Equal(t, 1, record(t, svc, EraSpace, MoodMysterious).StreakAfter)

	clock.Advance(5 * time.Hour)
	assert.Equal(t, 1, record(t, svc, EraSpace, MoodMysterious).StreakAfter, "same day")

	clock.Advance(24 * time.Hour)
	assert.Equal(t, 2, record(t, svc, EraSpace, MoodMysterious).StreakAfter, "next day")

	clock.Advance(24 * time.Hour)
	res := record(t, svc, EraSpace, MoodMysterious)
	assert.Equal(t, 3, res.StreakAfter)
	assert.Equal(t, 3, res.Stats.LongestStreak)

	clock.Advance(3 * 24 * time.Hour)
	res = record(t, svc, EraSpace, MoodMysterious)
	assert.Equal(t, 1, res.StreakAfter, "skipped days reset")
	assert.Equal(t, 3, res.Stats.LongestStreak)
}

func TestUpdateStreak_CalendarDaysInZone(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	// 23:30 and 00:30 local on consecutive days, one hour apart.
	last := time.Date(2026, time.June, 1, 23, 30, 0, 0, loc)
	now := last.Add(time.Hour)

	s := &storage.GameStats{LastPlayDate: last.UnixMilli(), CurrentStreak: 4, LongestStreak: 4}
	UpdateStreak(s, now, loc)
	assert.Equal(t, 5, s.CurrentStreak)
	assert.Equal(t, 5, s.LongestStreak)
	assert.Equal(t, now.UnixMilli(), s.LastPlayDate)

	// Same instant seen from UTC falls on one day, so nothing changes.
	s = &storage.GameStats{LastPlayDate: time.Date(2026, time.June, 2, 4, 0, 0, 0, time.UTC).UnixMilli(), CurrentStreak: 2, LongestStreak: 6}
	UpdateStreak(s, time.Date(2026, time.June, 2, 23, 0, 0, 0, time.UTC), time.UTC)
	assert.Equal(t, 2, s.CurrentStreak)
	assert.Equal(t, 6, s.LongestStreak)
}

func TestTrackCombo_CountsOnce(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	isNew, err := svc.TrackCombo(ctx, EraDiner, MoodEnergetic)
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = svc.TrackCombo(ctx, EraDiner, MoodEnergetic)
	require.NoError(t, err)
	assert.False(t, isNew)

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.UniqueCombos)
}

func TestRecordTransformation_TracksCombosInBackground(t *testing.T) {
	svc, _ := newSQLiteService(t)
	ctx := context.Background()

	record(t, svc, EraMedieval, MoodNostalgic)
	record(t, svc, EraMedieval, MoodNostalgic)
	record(t, svc, EraSpace, MoodNostalgic)
	svc.Wait()

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, st.UniqueCombos)
	assert.Equal(t, 3, st.TotalTransformations)
}

func TestTrackCombo_ConcurrentCallsCountOnce(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.TrackCombo(ctx, EraSpace, MoodAdventurous)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.UniqueCombos)
}

func TestBackgroundWorkDoesNotLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc, _ := newTestService(t, storage.NewMemoryStore())
	for _, e := range Eras {
		record(t, svc, e, MoodEnergetic)
	}
	svc.Wait()
}

func TestCheckAchievements_MedievalMaster(t *testing.T) {
	now := testStart
	st := &storage.GameStats{EraUsage: map[string]int{"medieval": 10}}

	got := CheckAchievements(st, AchievementCatalog(), now)
	assert.Equal(t, []string{AchievementMedievalMaster}, unlockedIDs(got))
	require.NotNil(t, got[0].UnlockedAt)
	assert.Equal(t, now.UnixMilli(), *got[0].UnlockedAt)
}

func TestCheckAchievements_FriesKingKeepsEarlierUnlock(t *testing.T) {
	earlier := testStart.Add(-48 * time.Hour).UnixMilli()
	current := AchievementCatalog()
	for i := range current {
		if current[i].ID == AchievementFriesCollector {
			current[i].Unlocked = true
			current[i].UnlockedAt = &earlier
		}
	}

	got := CheckAchievements(&storage.GameStats{Points: 2000}, current, testStart)
	newly := NewlyUnlocked(current, got)
	require.Len(t, newly, 1)
	assert.Equal(t, AchievementFriesKing, newly[0].ID)

	for _, a := range got {
		if a.ID == AchievementFriesCollector {
			assert.True(t, a.Unlocked)
			assert.Equal(t, earlier, *a.UnlockedAt)
		}
	}
}

func TestCheckAchievements_NeverRelocks(t *testing.T) {
	at := testStart.UnixMilli()
	current := AchievementCatalog()
	for i := range current {
		current[i].Unlocked = true
		current[i].UnlockedAt = &at
	}
	input := append([]storage.Achievement(nil), current...)

	got := CheckAchievements(&storage.GameStats{}, current, testStart.Add(time.Hour))
	if diff := cmp.Diff(input, got); diff != "" {
		t.Fatalf("achievements changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(input, current); diff != "" {
		t.Fatalf("input was modified (-want +got):\n%s", diff)
	}
}

func TestCheckAchievements_SessionAndChallengeSignals(t *testing.T) {
	base := testStart.UnixMilli()
	minute := time.Minute.Milliseconds()

	cases := []struct {
		name  string
		stats storage.GameStats
		want  []string
	}{
		{
			name:  "all moods this session",
			stats: storage.GameStats{SessionMoods: []string{"energetic", "nostalgic", "mysterious", "adventurous"}},
			want:  []string{AchievementMoodMaster},
		},
		{
			name:  "three moods",
			stats: storage.GameStats{SessionMoods: []string{"energetic", "nostalgic", "mysterious"}},
		},
		{
			name:  "five within five minutes",
			stats: storage.GameStats{RecentTransformations: []int64{base, base + minute, base + 2*minute, base + 3*minute, base + 5*minute}},
			want:  []string{AchievementSpeedster},
		},
		{
			name:  "five spread out",
			stats: storage.GameStats{RecentTransformations: []int64{base, base + minute, base + 2*minute, base + 3*minute, base + 6*minute}},
		},
		{
			name:  "daily champion",
			stats: storage.GameStats{DailyChallengesCompleted: 5},
			want:  []string{AchievementDailyChampion},
		},
		{
			name:  "seven day streak and combos",
			stats: storage.GameStats{CurrentStreak: 7, UniqueCombos: 10},
			want:  []string{AchievementComboKing, AchievementRainbowExplorer},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := unlockedIDs(CheckAchievements(&tc.stats, AchievementCatalog(), testStart))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeAchievements(t *testing.T) {
	at := int64(42)
	stored := []storage.Achievement{
		{ID: "retired_badge", Unlocked: true, UnlockedAt: &at},
		{ID: AchievementFriesKing, Name: "old name", Unlocked: true, UnlockedAt: &at},
	}
	got := NormalizeAchievements(stored)
	require.Len(t, got, len(AchievementCatalog()))
	assert.Equal(t, AchievementMedievalMaster, got[0].ID)

	last := got[len(got)-1]
	assert.Equal(t, AchievementFriesKing, last.ID)
	assert.Equal(t, "Fries King", last.Name)
	assert.True(t, last.Unlocked)
	assert.Equal(t, at, *last.UnlockedAt)
}

func TestMoodMasterUnlocksThroughService(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	var unlocked []storage.Achievement
	for _, m := range Moods {
		res, err := svc.ApplyTheme(ctx, EraDiner, m)
		require.NoError(t, err)
		unlocked = append(unlocked, res.Unlocked...)
	}
	// Four applies inside five minutes is not enough for speedster.
	assert.Equal(t, []string{AchievementMoodMaster}, unlockedIDs(unlocked))
}

func TestSpeedsterUnlocksThroughService(t *testing.T) {
	svc, clock := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	for i := 0; i < SpeedsterCount; i++ {
		_, err := svc.ApplyTheme(ctx, EraSpace, MoodEnergetic)
		require.NoError(t, err)
		clock.Advance(30 * time.Second)
	}
	list, err := svc.Achievements(ctx)
	require.NoError(t, err)
	assert.Contains(t, unlockedIDs(list), AchievementSpeedster)
}

func TestSessionRollover(t *testing.T) {
	mem := storage.NewMemoryStore()
	svc, clock := newTestService(t, mem)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		record(t, svc, EraMedieval, MoodMysterious)
	}
	svc.Wait()

	// A new process later the same day.
	clock.Advance(time.Hour)
	sess := NewSession(clock.Now())
	next := NewService(Options{Store: mem, Session: &sess, Location: time.UTC, Now: clock.Now})
	t.Cleanup(next.Wait)

	res, err := next.RecordTransformation(ctx, EraDiner, MoodEnergetic, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.TransformationsInSession)
	assert.Equal(t, []string{"energetic"}, res.Stats.SessionMoods)
	assert.Equal(t, sess.StartedAt.UnixMilli(), res.Stats.SessionStartTime)
	assert.Equal(t, 4, res.Stats.TotalTransformations)

	res, err = next.RecordTransformation(ctx, EraDiner, MoodEnergetic, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Stats.TransformationsInSession)
}

func TestSessionIdleTimeoutContinuesSession(t *testing.T) {
	mem := storage.NewMemoryStore()
	clock := &testClock{t: testStart}
	ctx := context.Background()

	open := func() *Service {
		sess := Session{StartedAt: clock.Now(), IdleTimeout: 30 * time.Minute}
		svc := NewService(Options{Store: mem, Session: &sess, Location: time.UTC, Now: clock.Now})
		t.Cleanup(svc.Wait)
		return svc
	}

	for i, m := range Moods[:3] {
		clock.Advance(time.Minute)
		_, err := open().RecordTransformation(ctx, EraSpace, m, 0)
		require.NoError(t, err, "run %d", i)
	}

	clock.Advance(time.Minute)
	res, err := open().ApplyTheme(ctx, EraSpace, Moods[3])
	require.NoError(t, err)
	assert.Equal(t, 4, res.Transform.Stats.TransformationsInSession)
	assert.Equal(t, []string{AchievementMoodMaster}, unlockedIDs(res.Unlocked))

	clock.Advance(time.Hour)
	tr, err := open().RecordTransformation(ctx, EraSpace, MoodEnergetic, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Stats.TransformationsInSession)
}

func TestTodayChallenge_Idempotent(t *testing.T) {
	svc, clock := newSQLiteService(t)
	ctx := context.Background()

	first, err := svc.TodayChallenge(ctx)
	require.NoError(t, err)
	clock.Advance(6 * time.Hour)
	second, err := svc.TodayChallenge(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("challenge changed within a day (-first +second):\n%s", diff)
	}
	assert.Equal(t, "2026-03-10", first.Date)
	assert.Equal(t, ChallengeBonus, first.BonusPoints)
	assert.False(t, first.Completed)
}

func TestTodayChallenge_PresetCyclesEveryEightDays(t *testing.T) {
	svc, clock := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	clock.Set(time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC))
	a, err := svc.TodayChallenge(ctx)
	require.NoError(t, err)

	clock.Set(time.Date(2026, time.January, 18, 12, 0, 0, 0, time.UTC))
	b, err := svc.TodayChallenge(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, a.Date, b.Date)
	assert.Equal(t, a.Era, b.Era)
	assert.Equal(t, a.Mood, b.Mood)

	// Day 10 of the year maps to preset 10 % 8.
	p := challengePresets[2]
	assert.Equal(t, string(p.Era), a.Era)
	assert.Equal(t, string(p.Mood), a.Mood)
}

func TestTodayChallenge_ConcurrentCallersAgree(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]*storage.DailyChallenge, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := svc.TodayChallenge(ctx)
			assert.NoError(t, err)
			results[i] = c
		}(i)
	}
	wg.Wait()
	for _, c := range results[1:] {
		assert.Equal(t, results[0], c)
	}
}

func TestCompleteDailyChallenge_BonusOnce(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	bonus, err := svc.CompleteDailyChallenge(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, bonus, "no challenge yet")

	_, err = svc.TodayChallenge(ctx)
	require.NoError(t, err)

	bonus, err = svc.CompleteDailyChallenge(ctx)
	require.NoError(t, err)
	assert.Equal(t, ChallengeBonus, bonus)

	for i := 0; i < 3; i++ {
		bonus, err = svc.CompleteDailyChallenge(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, bonus)
	}

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.DailyChallengesCompleted)

	c, err := svc.TodayChallenge(ctx)
	require.NoError(t, err)
	assert.True(t, c.Completed)
}

func TestCompleteChallengeAndRecord(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	out, err := svc.CompleteChallengeAndRecord(ctx)
	require.NoError(t, err)
	assert.Equal(t, ChallengeBonus, out.Bonus)
	require.NotNil(t, out.Apply)
	assert.Equal(t, EarnedPoints(ChallengeBonus, 1), out.Apply.Transform.PointsEarned)
	assert.Equal(t, out.Challenge.Era, string(out.Apply.Transform.Era))

	prefs, err := svc.Prefs(ctx)
	require.NoError(t, err)
	assert.Equal(t, out.Challenge.Era, prefs.CurrentEra)
	assert.Equal(t, out.Challenge.Mood, prefs.CurrentMood)

	again, err := svc.CompleteChallengeAndRecord(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Bonus)
	assert.Nil(t, again.Apply)
}

func TestChallengeDisplayName(t *testing.T) {
	assert.Equal(t, "🌌 Space Secrets", ChallengeDisplayName("space", "mysterious"))
	assert.Equal(t, "space - adventurous", ChallengeDisplayName("space", "adventurous"))
}

func TestApplyRandom(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 10; i++ {
		res, err := svc.ApplyRandom(ctx, rng)
		require.NoError(t, err)
		assert.True(t, res.Transform.Era.IsValid())
		assert.True(t, res.Transform.Mood.IsValid())
	}
	require.NoError(t, svc.SetRandomMode(ctx, true))
	prefs, err := svc.Prefs(ctx)
	require.NoError(t, err)
	assert.True(t, prefs.RandomMode)
}

func TestCustomThemes(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.CreateTheme(ctx, CreateThemeInput{Name: "  "})
	assert.ErrorIs(t, err, ErrThemeNameRequired)

	_, err = svc.CreateTheme(ctx, CreateThemeInput{Name: "Neon", Mood: "grumpy"})
	var invalid InvalidThemeError
	assert.True(t, errors.As(err, &invalid))

	a, err := svc.CreateTheme(ctx, CreateThemeInput{Name: "Gold Hall"})
	require.NoError(t, err)
	assert.Equal(t, DefaultThemeIcon, a.Icon)
	assert.Equal(t, string(DefaultThemeMood), a.Mood)
	assert.Equal(t, testStart.UnixMilli(), a.CreatedAt)

	b, err := svc.CreateTheme(ctx, CreateThemeInput{Name: "Neon", Mood: "energetic", FontFamily: "monospace"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	list, err := svc.ListThemes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Gold Hall", list[0].Name)

	require.NoError(t, svc.DeleteTheme(ctx, a.ID))
	var nf ThemeNotFoundError
	assert.ErrorAs(t, svc.DeleteTheme(ctx, a.ID), &nf)

	list, err = svc.ListThemes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestParseEraAndMood(t *testing.T) {
	e, err := ParseEra(" Retro ")
	require.NoError(t, err)
	assert.Equal(t, EraDiner, e)

	m, err := ParseMood("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMood, m)

	_, err = ParseEra("nature")
	assert.EqualError(t, err, `unknown era "nature" (want medieval|diner|space)`)
}
