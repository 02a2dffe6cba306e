package engine

import (
	"time"

	"flavortown/internal/storage"
)

// Session holds the per-process state that resets on every start. Create one
// when the process starts and hand it to NewService.
type Session struct {
	StartedAt time.Time
	// IdleTimeout, when set, lets a new process continue the stored session
	// if the last transformation is at most this old. Short-lived CLI runs
	// use it so that a burst of commands counts as one session.
	IdleTimeout time.Duration
}

func NewSession(now time.Time) Session {
	return Session{StartedAt: now}
}

// rollover resets session counters on stats written by an earlier session.
// It reports whether anything changed.
func (sess Session) rollover(s *storage.GameStats, now time.Time) bool {
	start := sess.StartedAt.UnixMilli()
	if s.SessionStartTime >= start {
		return false
	}
	if sess.IdleTimeout > 0 && len(s.RecentTransformations) > 0 {
		last := s.RecentTransformations[len(s.RecentTransformations)-1]
		if now.UnixMilli()-last <= sess.IdleTimeout.Milliseconds() {
			return false
		}
	}
	s.SessionStartTime = start
	s.TransformationsInSession = 0
	s.SessionMoods = nil
	return true
}
