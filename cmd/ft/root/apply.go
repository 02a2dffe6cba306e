package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"flavortown/internal/engine"
	"flavortown/internal/ui"
)

func newApplyCmd(a *app) *cobra.Command {
	var random bool
	cmd := &cobra.Command{
		Use:   "apply [era] [mood]",
		Short: "Apply an era/mood theme and earn golden fries",
		Long: `Apply a theme. Eras: medieval, diner, space. Moods: adventurous (default),
nostalgic, mysterious, energetic.

With --random, or with no arguments while random mode is on, a random era and
mood are picked.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 2 {
				return errors.New("at most an era and a mood")
			}
			if random && len(args) > 0 {
				return errors.New("--random takes no arguments")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 0 && !random {
				prefs, err := svc.Prefs(ctx)
				if err != nil {
					return err
				}
				if !prefs.RandomMode {
					return errors.New("era is required (or use --random)")
				}
				random = true
			}

			var res *engine.ApplyResult
			if random {
				rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
				res, err = svc.ApplyRandom(ctx, rng)
			} else {
				era, perr := engine.ParseEra(args[0])
				if perr != nil {
					return perr
				}
				moodArg := ""
				if len(args) == 2 {
					moodArg = args[1]
				}
				mood, perr := engine.ParseMood(moodArg)
				if perr != nil {
					return perr
				}
				res, err = svc.ApplyTheme(ctx, era, mood)
			}
			if err != nil {
				return err
			}

			printApply(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().BoolVar(&random, "random", false, "pick a random era and mood")
	return cmd
}

func printApply(out io.Writer, res *engine.ApplyResult) {
	tr := res.Transform
	fmt.Fprintln(out, ui.Heading(tr.Era.Icon(), tr.Era.Label()+" · "+tr.Mood.Label()))
	fmt.Fprintf(out, "%s %s %s\n", ui.IconFries, ui.Gold.Render(fmt.Sprintf("+%d fries", tr.PointsEarned)), ui.Muted.Render(ui.Multiplier(tr.Multiplier)))
	fmt.Fprintln(out, ui.LabelValue("Total", ui.Points(tr.Stats.Points)))
	switch {
	case tr.StreakAfter > tr.StreakBefore:
		fmt.Fprintf(out, "%s %s\n", ui.IconFire, ui.Good.Render(fmt.Sprintf("%d-day streak!", tr.StreakAfter)))
	case tr.StreakAfter < tr.StreakBefore:
		fmt.Fprintf(out, "%s %s\n", ui.IconFire, ui.Warn.Render("streak restarted"))
	}
	for _, ach := range res.Unlocked {
		fmt.Fprintf(out, "%s %s %s %s\n", ui.BadgeUnlocked, ach.Icon, ui.Gold.Render(ach.Name), ui.Muted.Render(ach.Description))
	}
}
