package engine

import "strings"

// ParseEra parses user input to an Era. Short aliases are accepted.
func ParseEra(input string) (Era, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "medieval", "med", "castle":
		return EraMedieval, nil
	case "diner", "retro":
		return EraDiner, nil
	case "space", "cosmic", "future":
		return EraSpace, nil
	default:
		return "", InvalidThemeError{Kind: "era", Value: input, Allowed: eraNames()}
	}
}

// ParseMood parses user input to a Mood. Empty input yields DefaultMood.
func ParseMood(input string) (Mood, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return DefaultMood, nil
	}
	m := Mood(s)
	if !m.IsValid() {
		return "", InvalidThemeError{Kind: "mood", Value: input, Allowed: moodNames()}
	}
	return m, nil
}
