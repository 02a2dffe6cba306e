package engine

import (
	"time"

	"flavortown/internal/storage"
)

// DateLayout is the calendar-date format used for day comparisons and the
// daily challenge key.
const DateLayout = "2006-01-02"

// DateString formats t as a calendar date in loc.
func DateString(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// CalendarDaysBetween returns the number of calendar days from a to b in loc.
// Daylight-saving shifts do not affect the result.
func CalendarDaysBetween(a, b time.Time, loc *time.Location) int {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// UpdateStreak applies a play at now to the streak counters.
//
// The date string decides "same day". Only when it differs does the calendar
// day difference choose between extending (exactly 1) and restarting (more
// than 1) the streak; lastPlayDate moves to now in both cases.
func UpdateStreak(s *storage.GameStats, now time.Time, loc *time.Location) {
	last := time.UnixMilli(s.LastPlayDate)
	if DateString(last, loc) != DateString(now, loc) {
		switch days := CalendarDaysBetween(last, now, loc); {
		case days == 1:
			s.CurrentStreak++
		case days > 1:
			s.CurrentStreak = 1
		}
		s.LastPlayDate = now.UnixMilli()
	}
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
}
