package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"flavortown/internal/storage"
	"flavortown/internal/ui"
)

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print state changes as they happen, including other processes' writes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, store, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			w, err := storage.NewWatcher(store, a.cfg.DBPath, a.log)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			w.Subscribe(func(changes []storage.Change) {
				for _, c := range changes {
					fmt.Fprintln(out, formatChange(time.Now(), c))
				}
			})

			fmt.Fprintln(out, ui.Heading(ui.IconEye, "Watching "+a.cfg.DBPath+" (ctrl+c to stop)"))
			return w.Run(ctx)
		},
	}
	return cmd
}

func formatChange(at time.Time, c storage.Change) string {
	old := "∅"
	if c.OldValue != nil {
		old = truncate(string(c.OldValue), 60)
	}
	return fmt.Sprintf("%s %s %s → %s",
		ui.Muted.Render(at.Format("15:04:05")),
		ui.Key.Render(c.Key),
		ui.Muted.Render(old),
		truncate(string(c.NewValue), 120))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
