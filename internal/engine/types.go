package engine

import "strings"

type Era string

const (
	EraMedieval Era = "medieval"
	EraDiner    Era = "diner"
	EraSpace    Era = "space"
)

// Eras lists the known eras in display order.
var Eras = []Era{EraMedieval, EraDiner, EraSpace}

func (e Era) IsValid() bool {
	switch e {
	case EraMedieval, EraDiner, EraSpace:
		return true
	default:
		return false
	}
}

func (e Era) Label() string {
	switch e {
	case EraMedieval:
		return "Medieval Feast"
	case EraDiner:
		return "Retro Diner"
	case EraSpace:
		return "Futuristic Space"
	default:
		return string(e)
	}
}

func (e Era) Icon() string {
	switch e {
	case EraMedieval:
		return "🏰"
	case EraDiner:
		return "🍔"
	case EraSpace:
		return "🚀"
	default:
		return "🎨"
	}
}

type Mood string

const (
	MoodAdventurous Mood = "adventurous"
	MoodNostalgic   Mood = "nostalgic"
	MoodMysterious  Mood = "mysterious"
	MoodEnergetic   Mood = "energetic"
)

// Moods lists the known moods in display order.
var Moods = []Mood{MoodAdventurous, MoodNostalgic, MoodMysterious, MoodEnergetic}

// DefaultMood is used when an era is applied without a mood.
const DefaultMood Mood = MoodAdventurous

func (m Mood) IsValid() bool {
	switch m {
	case MoodAdventurous, MoodNostalgic, MoodMysterious, MoodEnergetic:
		return true
	default:
		return false
	}
}

func (m Mood) Label() string {
	switch m {
	case MoodAdventurous:
		return "⚔️ Adventurous"
	case MoodNostalgic:
		return "🕰️ Nostalgic"
	case MoodMysterious:
		return "🔮 Mysterious"
	case MoodEnergetic:
		return "⚡ Energetic"
	default:
		return string(m)
	}
}

// MaxUniqueCombos is the number of distinct era/mood pairings.
func MaxUniqueCombos() int {
	return len(Eras) * len(Moods)
}

func eraNames() string {
	names := make([]string, len(Eras))
	for i, e := range Eras {
		names[i] = string(e)
	}
	return strings.Join(names, "|")
}

func moodNames() string {
	names := make([]string, len(Moods))
	for i, m := range Moods {
		names[i] = string(m)
	}
	return strings.Join(names, "|")
}
