package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"flavortown/internal/storage"
)

// Options configures a Service. Store is required; everything else has a
// default.
type Options struct {
	Store    storage.Store
	Session  *Session
	Location *time.Location
	Now      func() time.Time
	Logger   *zap.Logger
}

type Service struct {
	store        storage.Store
	stats        *storage.StatsRepo
	achievements *storage.AchievementRepo
	challenges   *storage.ChallengeRepo
	combos       *storage.ComboRepo
	prefs        *storage.PrefsRepo
	themes       *storage.ThemeRepo

	session Session
	loc     *time.Location
	now     func() time.Time
	log     *zap.Logger

	pending   sync.WaitGroup
	challenge singleflight.Group
}

func NewService(opts Options) *Service {
	s := &Service{
		store:        opts.Store,
		stats:        storage.NewStatsRepo(opts.Store),
		achievements: storage.NewAchievementRepo(opts.Store),
		challenges:   storage.NewChallengeRepo(opts.Store),
		combos:       storage.NewComboRepo(opts.Store),
		prefs:        storage.NewPrefsRepo(opts.Store),
		themes:       storage.NewThemeRepo(opts.Store),
		loc:          opts.Location,
		now:          opts.Now,
		log:          opts.Logger,
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if opts.Session != nil {
		s.session = *opts.Session
	} else {
		s.session = NewSession(s.now())
	}
	return s
}

// Location is the zone used for calendar days.
func (s *Service) Location() *time.Location { return s.loc }

// Wait blocks until background work started by earlier calls (combo
// tracking) has finished.
func (s *Service) Wait() {
	s.pending.Wait()
}

// lock serializes read-modify-write sequences on this store's namespace.
func (s *Service) lock() func() {
	return storage.LockNamespace(s.store.Namespace())
}

// goAsync runs fn in the background, detached from ctx cancellation.
func (s *Service) goAsync(ctx context.Context, name string, fn func(ctx context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := fn(ctx); err != nil {
			s.log.Warn("background task failed", zap.String("task", name), zap.Error(err))
		}
	}()
}

// Stats returns the current snapshot, zeroed defaults when nothing was
// stored yet.
func (s *Service) Stats(ctx context.Context) (*storage.GameStats, error) {
	st, err := s.stats.Get(ctx)
	if err != nil {
		return nil, err
	}
	return s.normalizeStats(st), nil
}

// DefaultStats returns a zeroed snapshot with every usage key present.
func (s *Service) DefaultStats() *storage.GameStats {
	st := &storage.GameStats{
		EraUsage:         make(map[string]int, len(Eras)),
		MoodUsage:        make(map[string]int, len(Moods)),
		SessionStartTime: s.session.StartedAt.UnixMilli(),
	}
	for _, e := range Eras {
		st.EraUsage[string(e)] = 0
	}
	for _, m := range Moods {
		st.MoodUsage[string(m)] = 0
	}
	return st
}

// normalizeStats fills missing usage keys on a loaded snapshot, or returns
// defaults for nil.
func (s *Service) normalizeStats(st *storage.GameStats) *storage.GameStats {
	if st == nil {
		return s.DefaultStats()
	}
	if st.EraUsage == nil {
		st.EraUsage = make(map[string]int, len(Eras))
	}
	if st.MoodUsage == nil {
		st.MoodUsage = make(map[string]int, len(Moods))
	}
	for _, e := range Eras {
		if _, ok := st.EraUsage[string(e)]; !ok {
			st.EraUsage[string(e)] = 0
		}
	}
	for _, m := range Moods {
		if _, ok := st.MoodUsage[string(m)]; !ok {
			st.MoodUsage[string(m)] = 0
		}
	}
	return st
}
