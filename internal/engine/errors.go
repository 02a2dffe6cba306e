package engine

import (
	"errors"
	"fmt"
)

// ErrNegativeBonus is returned when a caller passes a negative bonus.
var ErrNegativeBonus = errors.New("bonus points must not be negative")

// InvalidThemeError indicates an era or mood outside the fixed catalogs.
type InvalidThemeError struct {
	Kind    string // "era" or "mood"
	Value   string
	Allowed string
}

func (e InvalidThemeError) Error() string {
	if e.Allowed == "" {
		return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
	}
	return fmt.Sprintf("unknown %s %q (want %s)", e.Kind, e.Value, e.Allowed)
}

func validateTheme(era Era, mood Mood) error {
	if !era.IsValid() {
		return InvalidThemeError{Kind: "era", Value: string(era), Allowed: eraNames()}
	}
	if !mood.IsValid() {
		return InvalidThemeError{Kind: "mood", Value: string(mood), Allowed: moodNames()}
	}
	return nil
}
