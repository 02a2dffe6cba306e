package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Flavortown theme (CLI + TUI).

const (
	IconFries   = "🍟"
	IconSparkle = "✨"
	IconFire    = "🔥"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconLock    = "🔒"
	IconDice    = "🎲"
	IconPalette = "🎨"
	IconInfo    = "ℹ️"
	IconError   = "🧨"
	IconTarget  = "🎯"
	IconEye     = "👀"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	BadgeUnlocked = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("UNLOCKED")
)

var printer = message.NewPrinter(language.English)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Points formats a fries count with thousands separators.
func Points(n int) string {
	return printer.Sprintf("%d", n)
}

// Multiplier formats a point multiplier as "x1.35".
func Multiplier(m float64) string {
	return fmt.Sprintf("x%.2f", m)
}

// AchievementLine renders one achievement row.
func AchievementLine(icon, name, desc string, unlocked bool) string {
	if unlocked {
		return fmt.Sprintf("%s %s %s", icon, Gold.Render(name), Muted.Render(desc))
	}
	return fmt.Sprintf("%s %s %s", IconLock, Muted.Render(name), Muted.Render(desc))
}

// ChallengeStatus renders the completion state of a daily challenge.
func ChallengeStatus(completed bool) string {
	if completed {
		return Good.Render("completed")
	}
	return Warn.Render("open")
}

// ProgressBar renders value/total as a fixed-width bar.
func ProgressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
