package tui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"flavortown/internal/engine"
	"flavortown/internal/storage"
	"flavortown/internal/ui"
)

type boardModel struct {
	ctx     context.Context
	svc     *engine.Service
	rng     *rand.Rand
	changes <-chan struct{}

	width  int
	height int

	stats        *storage.GameStats
	prefs        *storage.Prefs
	challenge    *storage.DailyChallenge
	achievements []storage.Achievement

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	stats        *storage.GameStats
	prefs        *storage.Prefs
	challenge    *storage.DailyChallenge
	achievements []storage.Achievement
	err          error
}

type appliedMsg struct {
	res *engine.ApplyResult
	err error
}

type challengeMsg struct {
	out *engine.ChallengeOutcome
	err error
}

type randomModeMsg struct {
	on  bool
	err error
}

// storeChangedMsg is sent when the state store reports a write.
type storeChangedMsg struct{}

func newBoardModel(ctx context.Context, svc *engine.Service, rng *rand.Rand, changes <-chan struct{}) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		rng:     rng,
		changes: changes,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.waitForChange())
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		st, err := m.svc.Stats(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		prefs, err := m.svc.Prefs(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		c, err := m.svc.TodayChallenge(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		list, err := m.svc.Achievements(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{stats: st, prefs: prefs, challenge: c, achievements: list}
	}
}

func (m boardModel) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-m.changes; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func (m boardModel) applyRandomCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ApplyRandom(m.ctx, m.rng)
		return appliedMsg{res: res, err: err}
	}
}

func (m boardModel) completeChallengeCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.svc.CompleteChallengeAndRecord(m.ctx)
		return challengeMsg{out: out, err: err}
	}
}

func (m boardModel) toggleRandomCmd() tea.Cmd {
	on := m.prefs == nil || !m.prefs.RandomMode
	return func() tea.Msg {
		return randomModeMsg{on: on, err: m.svc.SetRandomMode(m.ctx, on)}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.stats = msg.stats
		m.prefs = msg.prefs
		m.challenge = msg.challenge
		m.achievements = msg.achievements
		return m, nil
	case storeChangedMsg:
		return m, tea.Batch(m.loadCmd(), m.waitForChange())
	case appliedMsg:
		if msg.err != nil {
			m.lastLog = "Apply failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = describeApply(msg.res)
		return m, m.loadCmd()
	case challengeMsg:
		if msg.err != nil {
			m.lastLog = "Challenge failed: " + msg.err.Error()
			return m, nil
		}
		if msg.out.Bonus == 0 {
			m.lastLog = "Today's challenge is already completed."
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Challenge complete! +%d bonus. %s", msg.out.Bonus, describeApply(msg.out.Apply))
		return m, m.loadCmd()
	case randomModeMsg:
		if msg.err != nil {
			m.lastLog = "Random mode failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = "Random mode " + onOff(msg.on) + "."
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
			return m, m.loadCmd()
		case "a", " ":
			m.lastLog = "Rolling the dice…"
			return m, m.applyRandomCmd()
		case "c":
			m.lastLog = "Completing today's challenge…"
			return m, m.completeChallengeCmd()
		case "m":
			return m, m.toggleRandomCmd()
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.stats == nil {
		return "Flavortown | loading…"
	}
	theme := "none yet"
	if m.prefs != nil && m.prefs.CurrentEra != "" {
		theme = engine.Era(m.prefs.CurrentEra).Label() + " / " + engine.Mood(m.prefs.CurrentMood).Label()
	}
	return fmt.Sprintf("Flavortown | %s %s fries | %s %d-day streak | %s",
		ui.IconFries, ui.Points(m.stats.Points),
		ui.IconFire, m.stats.CurrentStreak,
		theme)
}

func (m boardModel) renderSidebar() string {
	if m.stats == nil {
		return "Stats\n\nLoading…"
	}
	st := m.stats
	lines := []string{"Stats"}
	lines = append(lines, fmt.Sprintf("- transformations %d", st.TotalTransformations))
	lines = append(lines, fmt.Sprintf("- multiplier %s", ui.Multiplier(engine.Multiplier(st))))
	lines = append(lines, fmt.Sprintf("- longest streak %d", st.LongestStreak))
	lines = append(lines, fmt.Sprintf("- combos %d/%d %s", st.UniqueCombos, engine.MaxUniqueCombos(),
		ui.ProgressBar(st.UniqueCombos, engine.MaxUniqueCombos(), 8)))
	for _, e := range engine.Eras {
		lines = append(lines, fmt.Sprintf("- %s %d", e.Icon(), st.EraUsage[string(e)]))
	}
	random := false
	if m.prefs != nil {
		random = m.prefs.RandomMode
	}
	lines = append(lines, fmt.Sprintf("- random mode %s", onOff(random)))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- a/space: random theme")
	lines = append(lines, "- c: complete challenge")
	lines = append(lines, "- m: toggle random mode")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Daily Challenge")
	if c := m.challenge; c != nil {
		out = append(out, fmt.Sprintf("%s %s (+%d) %s", ui.IconTarget,
			engine.ChallengeDisplayName(c.Era, c.Mood), c.BonusPoints, ui.ChallengeStatus(c.Completed)))
	} else {
		out = append(out, "(none)")
	}
	out = append(out, "")

	unlocked := 0
	for _, a := range m.achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	out = append(out, fmt.Sprintf("Achievements %d/%d", unlocked, len(m.achievements)))
	for _, a := range m.achievements {
		out = append(out, ui.AchievementLine(a.Icon, a.Name, a.Description, a.Unlocked))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func describeApply(res *engine.ApplyResult) string {
	if res == nil || res.Transform == nil {
		return ""
	}
	tr := res.Transform
	s := fmt.Sprintf("%s %s: +%d fries (%s)", tr.Era.Icon(), tr.Mood.Label(), tr.PointsEarned, ui.Multiplier(tr.Multiplier))
	for _, a := range res.Unlocked {
		s += fmt.Sprintf(" %s %s!", a.Icon, a.Name)
	}
	return s
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
