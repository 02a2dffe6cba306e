package storage

// Persisted keys. Combo markers use ComboKey.
const (
	KeyStats          = "stats"
	KeyAchievements   = "achievements"
	KeyDailyChallenge = "dailyChallenge"
	KeyCurrentEra     = "currentEra"
	KeyCurrentMood    = "currentMood"
	KeyRandomMode     = "randomMode"
	KeyCustomThemes   = "customThemes"

	comboKeyPrefix = "combo_"
)

// ComboKey returns the marker key for an era/mood pairing.
func ComboKey(era, mood string) string {
	return comboKeyPrefix + era + "-" + mood
}

// GameStats is the singleton progression snapshot. Timestamps are ms since
// the Unix epoch.
type GameStats struct {
	Points                   int            `json:"points"`
	TotalTransformations     int            `json:"totalTransformations"`
	EraUsage                 map[string]int `json:"eraUsage"`
	MoodUsage                map[string]int `json:"moodUsage"`
	UniqueCombos             int            `json:"uniqueCombos"`
	LastPlayDate             int64          `json:"lastPlayDate"`
	CurrentStreak            int            `json:"currentStreak"`
	LongestStreak            int            `json:"longestStreak"`
	DailyChallengesCompleted int            `json:"dailyChallengesCompleted"`
	TotalFriesCollected      int            `json:"totalFriesCollected"`
	SessionStartTime         int64          `json:"sessionStartTime"`
	TransformationsInSession int            `json:"transformationsInSession"`

	// Distinct moods applied this session, in first-use order.
	SessionMoods []string `json:"sessionMoods,omitempty"`
	// Timestamps of the most recent transformations, oldest first.
	RecentTransformations []int64 `json:"recentTransformations,omitempty"`
}

type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
	UnlockedAt  *int64 `json:"unlockedAt,omitempty"`
}

type DailyChallenge struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Era         string `json:"era"`
	Mood        string `json:"mood"`
	Completed   bool   `json:"completed"`
	BonusPoints int    `json:"bonusPoints"`
}

type CustomTheme struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Icon           string `json:"icon"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	FontFamily     string `json:"fontFamily"`
	Mood           string `json:"mood"`
	CreatedAt      int64  `json:"createdAt"`
}

// Prefs is the presentation state kept next to the engine's keys.
type Prefs struct {
	CurrentEra  string
	CurrentMood string
	RandomMode  bool
}
