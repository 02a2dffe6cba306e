package storage

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports changes written to a SQLite state file by any process.
// It watches the database directory, and after a burst of writes to the
// database (or its WAL) it re-reads every key and publishes the difference.
type Watcher struct {
	store   *SQLiteStore
	path    string
	log     *zap.Logger
	watcher *fsnotify.Watcher
	feed    feed

	debounce time.Duration

	mu   sync.Mutex
	last map[string]json.RawMessage
}

// NewWatcher creates a watcher for the database file at path.
func NewWatcher(store *SQLiteStore, path string, log *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		store:    store,
		path:     path,
		log:      log,
		watcher:  fw,
		debounce: 150 * time.Millisecond,
	}, nil
}

func (w *Watcher) Subscribe(fn ChangeListener) func() {
	return w.feed.subscribe(fn)
}

// Run blocks until ctx is done. It takes an initial snapshot so that only
// later writes are reported.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	if _, err := w.refresh(ctx); err != nil {
		return err
	}

	base := filepath.Base(w.path)
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasPrefix(filepath.Base(event.Name), base) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if pending == nil {
				pending = time.After(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("state watcher error", zap.Error(err))

		case <-pending:
			pending = nil
			changes, err := w.refresh(ctx)
			if err != nil {
				w.log.Warn("state watcher refresh failed", zap.Error(err))
				continue
			}
			w.feed.publish(changes)
		}
	}
}

func (w *Watcher) refresh(ctx context.Context) ([]Change, error) {
	snap, err := w.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	changes := diff(w.last, snap)
	w.last = snap
	return changes, nil
}
