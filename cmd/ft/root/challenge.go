package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flavortown/internal/engine"
	"flavortown/internal/ui"
)

func newChallengeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Show today's challenge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := svc.TodayChallenge(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Daily Challenge "+c.Date))
			fmt.Fprintln(out, ui.LabelValue("Theme", engine.ChallengeDisplayName(c.Era, c.Mood)))
			fmt.Fprintln(out, ui.LabelValue("Bonus", fmt.Sprintf("+%d fries", c.BonusPoints)))
			fmt.Fprintln(out, ui.LabelValue("Status", ui.ChallengeStatus(c.Completed)))
			if !c.Completed {
				fmt.Fprintln(out, ui.Muted.Render("Run `ft challenge complete` to apply it and claim the bonus."))
			}
			return nil
		},
	}
	cmd.AddCommand(newChallengeCompleteCmd(a))
	return cmd
}

func newChallengeCompleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Apply today's challenge theme and claim its bonus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteChallengeAndRecord(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.Bonus == 0 {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconInfo+" Today's challenge is already completed."))
				return nil
			}
			fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s %s complete! +%d bonus", ui.IconDone, engine.ChallengeDisplayName(res.Challenge.Era, res.Challenge.Mood), res.Bonus)))
			printApply(out, res.Apply)
			return nil
		},
	}
	return cmd
}
