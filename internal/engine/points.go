package engine

import (
	"math"

	"flavortown/internal/storage"
)

const (
	// BasePoints is awarded for every transformation before the multiplier.
	BasePoints = 10

	// StreakBonusRate is the multiplier bonus per streak day, capped at StreakBonusCap.
	StreakBonusRate = 0.1
	StreakBonusCap  = 1.0

	// SessionBurstSize transformations in one session add SessionBurstBonus. Uncapped.
	SessionBurstSize  = 5
	SessionBurstBonus = 0.15
)

// Multiplier returns the point multiplier for the given stats:
// 1 + min(streak*0.1, 1.0) + floor(sessionCount/5)*0.15.
func Multiplier(s *storage.GameStats) float64 {
	streakBonus := math.Min(float64(s.CurrentStreak)*StreakBonusRate, StreakBonusCap)
	sessionBonus := math.Floor(float64(s.TransformationsInSession)/SessionBurstSize) * SessionBurstBonus
	return 1 + streakBonus + sessionBonus
}

// ApplyMultiplier scales points and truncates toward zero.
func ApplyMultiplier(points int, multiplier float64) int {
	return int(math.Floor(float64(points) * multiplier))
}

// EarnedPoints is the reward for one transformation with the given bonus.
func EarnedPoints(bonusPoints int, multiplier float64) int {
	return ApplyMultiplier(BasePoints+bonusPoints, multiplier)
}
