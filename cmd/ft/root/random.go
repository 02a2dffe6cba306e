package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"flavortown/internal/ui"
)

func newRandomCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random on|off",
		Short: "Toggle random mode (bare `ft apply` picks a random theme)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
				return errors.New("want on or off")
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

			on := args[0] == "on"
			if err := svc.SetRandomMode(ctx, on); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Random mode %s\n", ui.IconDice, onOff(on))
			return nil
		},
	}
	return cmd
}
