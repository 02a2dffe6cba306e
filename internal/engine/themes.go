package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"flavortown/internal/storage"
)

// Form defaults for a new custom theme.
const (
	DefaultThemeIcon           = "🎨"
	DefaultThemePrimaryColor   = "#d4af37"
	DefaultThemeSecondaryColor = "#f0d860"
	DefaultThemeFontFamily     = "serif"
	DefaultThemeMood           = MoodMysterious
)

var ErrThemeNameRequired = errors.New("theme name is required")

type CreateThemeInput struct {
	Name           string
	Icon           string
	PrimaryColor   string
	SecondaryColor string
	FontFamily     string
	Mood           string
}

// ThemeNotFoundError is returned by DeleteTheme for an unknown id.
type ThemeNotFoundError struct {
	ID string
}

func (e ThemeNotFoundError) Error() string {
	return fmt.Sprintf("custom theme %q not found", e.ID)
}

// CreateTheme appends a custom theme. Empty fields take the form defaults.
func (s *Service) CreateTheme(ctx context.Context, in CreateThemeInput) (*storage.CustomTheme, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrThemeNameRequired
	}

	mood := DefaultThemeMood
	if strings.TrimSpace(in.Mood) != "" {
		m, err := ParseMood(in.Mood)
		if err != nil {
			return nil, err
		}
		mood = m
	}

	t := storage.CustomTheme{
		ID:             "custom_" + uuid.NewString(),
		Name:           name,
		Icon:           orDefault(in.Icon, DefaultThemeIcon),
		PrimaryColor:   orDefault(in.PrimaryColor, DefaultThemePrimaryColor),
		SecondaryColor: orDefault(in.SecondaryColor, DefaultThemeSecondaryColor),
		FontFamily:     orDefault(in.FontFamily, DefaultThemeFontFamily),
		Mood:           string(mood),
		CreatedAt:      s.now().UnixMilli(),
	}

	unlock := s.lock()
	defer unlock()

	themes, err := s.themes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.themes.Replace(ctx, append(themes, t)); err != nil {
		return nil, err
	}

	s.log.Debug("custom theme created", zap.String("id", t.ID), zap.String("name", t.Name))
	return &t, nil
}

// ListThemes returns custom themes in creation order.
func (s *Service) ListThemes(ctx context.Context) ([]storage.CustomTheme, error) {
	return s.themes.ListAll(ctx)
}

func (s *Service) DeleteTheme(ctx context.Context, id string) error {
	unlock := s.lock()
	defer unlock()

	themes, err := s.themes.ListAll(ctx)
	if err != nil {
		return err
	}
	kept := themes[:0]
	for _, t := range themes {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(themes) {
		return ThemeNotFoundError{ID: id}
	}
	return s.themes.Replace(ctx, kept)
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
