package root

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flavortown/internal/storage"
	"flavortown/internal/tui"
)

func newBoardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, store, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			feeds := []tui.ChangeFeed{store}
			w, err := storage.NewWatcher(store, a.cfg.DBPath, a.log)
			if err != nil {
				a.log.Warn("live updates from other processes disabled", zap.Error(err))
			} else {
				feeds = append(feeds, w)
				watchCtx, stopWatch := context.WithCancel(ctx)
				done := make(chan struct{})
				go func() {
					defer close(done)
					if err := w.Run(watchCtx); err != nil {
						a.log.Warn("state watcher stopped", zap.Error(err))
					}
				}()
				// Stop the watcher before cleanup closes the database.
				defer func() {
					stopWatch()
					<-done
				}()
			}

			return tui.RunBoard(ctx, svc, cmd.OutOrStdout(), feeds...)
		},
	}
	return cmd
}
