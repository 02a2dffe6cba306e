package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flavortown/internal/ui"
)

func newAchievementsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "List achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Pick up anything the current stats already earn.
			if _, err := svc.EvaluateAchievements(ctx); err != nil {
				return err
			}
			list, err := svc.Achievements(ctx)
			if err != nil {
				return err
			}

			unlocked := 0
			for _, ach := range list {
				if ach.Unlocked {
					unlocked++
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements %d/%d", unlocked, len(list))))
			for _, ach := range list {
				fmt.Fprintln(out, ui.AchievementLine(ach.Icon, ach.Name, ach.Description, ach.Unlocked))
			}
			return nil
		},
	}
	return cmd
}
