package tui

import (
	"context"
	"io"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"flavortown/internal/engine"
	"flavortown/internal/storage"
)

// ChangeFeed is anything that reports state writes: a Store, or a Watcher
// for writes made by other processes.
type ChangeFeed interface {
	Subscribe(fn storage.ChangeListener) func()
}

// RunBoard runs the interactive board until the user quits. The board
// reloads whenever one of feeds reports a change.
func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer, feeds ...ChangeFeed) error {
	changes := make(chan struct{}, 1)
	for _, f := range feeds {
		cancel := f.Subscribe(func([]storage.Change) {
			select {
			case changes <- struct{}{}:
			default:
			}
		})
		defer cancel()
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	m := newBoardModel(ctx, svc, rng, changes)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
