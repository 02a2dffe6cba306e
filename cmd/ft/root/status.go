package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"flavortown/internal/engine"
	"flavortown/internal/ui"
)

func newStatusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show fries, streak, multiplier and usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.Stats(ctx)
			if err != nil {
				return err
			}
			prefs, err := svc.Prefs(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Flavortown Status"))
			if prefs.CurrentEra != "" {
				fmt.Fprintln(out, ui.LabelValue("Theme", engine.Era(prefs.CurrentEra).Label()+" · "+engine.Mood(prefs.CurrentMood).Label()))
			}
			fmt.Fprintln(out, ui.LabelValue("Golden fries", ui.Points(st.Points)))
			fmt.Fprintln(out, ui.LabelValue("Collected", ui.Points(st.TotalFriesCollected)))
			fmt.Fprintln(out, ui.LabelValue("Multiplier", ui.Multiplier(engine.Multiplier(st))))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d days (best %d)", st.CurrentStreak, st.LongestStreak)))
			if st.LastPlayDate > 0 {
				fmt.Fprintln(out, ui.LabelValue("Last played", engine.DateString(time.UnixMilli(st.LastPlayDate), svc.Location())))
			}
			fmt.Fprintln(out, ui.LabelValue("Transformations", fmt.Sprintf("%d (%d this session)", st.TotalTransformations, st.TransformationsInSession)))
			fmt.Fprintln(out, ui.LabelValue("Combos", fmt.Sprintf("%d/%d %s", st.UniqueCombos, engine.MaxUniqueCombos(), ui.ProgressBar(st.UniqueCombos, engine.MaxUniqueCombos(), 12))))
			fmt.Fprintln(out, ui.LabelValue("Daily challenges", st.DailyChallengesCompleted))
			fmt.Fprintln(out, ui.LabelValue("Random mode", onOff(prefs.RandomMode)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("🗺️ Eras"))
			for _, e := range engine.Eras {
				fmt.Fprintf(out, "- %s %s: %d\n", e.Icon(), e.Label(), st.EraUsage[string(e)])
			}
			fmt.Fprintln(out, ui.H2.Render("🎭 Moods"))
			for _, m := range engine.Moods {
				fmt.Fprintf(out, "- %s: %d\n", m.Label(), st.MoodUsage[string(m)])
			}
			return nil
		},
	}
	return cmd
}

func onOff(on bool) string {
	if on {
		return ui.Good.Render("on")
	}
	return ui.Muted.Render("off")
}
