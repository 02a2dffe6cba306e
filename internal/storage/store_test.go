package storage

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "state.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSQLiteStore(db, path), path
}

func stores(t *testing.T) map[string]Store {
	sq, _ := newTestSQLiteStore(t)
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sq,
	}
}

func TestStore_GetMissingKeys(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			snap, err := st.Get(context.Background(), "nope", KeyStats)
			require.NoError(t, err)
			assert.Empty(t, snap)
		})
	}
}

func TestStore_SetWritesAllKeys(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			b := NewBatch()
			b.Put(KeyCurrentEra, "medieval")
			b.Put(KeyRandomMode, true)
			require.NoError(t, b.Commit(ctx, st))

			snap, err := st.Get(ctx, KeyCurrentEra, KeyRandomMode)
			require.NoError(t, err)
			assert.JSONEq(t, `"medieval"`, string(snap[KeyCurrentEra]))
			assert.JSONEq(t, `true`, string(snap[KeyRandomMode]))
		})
	}
}

func TestStore_ChangeFeedReportsOldAndNew(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			var mu sync.Mutex
			var got [][]Change
			cancel := st.Subscribe(func(changes []Change) {
				mu.Lock()
				got = append(got, changes)
				mu.Unlock()
			})

			require.NoError(t, st.Set(ctx, map[string]json.RawMessage{KeyCurrentMood: json.RawMessage(`"nostalgic"`)}))
			require.NoError(t, st.Set(ctx, map[string]json.RawMessage{KeyCurrentMood: json.RawMessage(`"energetic"`)}))
			// Same bytes: no change reported.
			require.NoError(t, st.Set(ctx, map[string]json.RawMessage{KeyCurrentMood: json.RawMessage(`"energetic"`)}))

			cancel()
			require.NoError(t, st.Set(ctx, map[string]json.RawMessage{KeyCurrentMood: json.RawMessage(`"mysterious"`)}))

			mu.Lock()
			defer mu.Unlock()
			require.Len(t, got, 2)
			assert.Nil(t, got[0][0].OldValue)
			assert.JSONEq(t, `"nostalgic"`, string(got[0][0].NewValue))
			assert.JSONEq(t, `"nostalgic"`, string(got[1][0].OldValue))
			assert.JSONEq(t, `"energetic"`, string(got[1][0].NewValue))
		})
	}
}

func TestBatch_EncodeErrorFailsCommit(t *testing.T) {
	st := NewMemoryStore()
	b := NewBatch()
	b.Put("bad", make(chan int))
	b.Put(KeyCurrentEra, "space")

	err := b.Commit(context.Background(), st)
	require.Error(t, err)
	assert.Equal(t, 0, st.Len())
}

func TestDecode_NullIsAbsent(t *testing.T) {
	var c DailyChallenge
	ok, err := Decode(map[string]json.RawMessage{KeyDailyChallenge: json.RawMessage(`null`)}, KeyDailyChallenge, &c)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepos_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestSQLiteStore(t)

	stats := NewStatsRepo(st)
	got, err := stats.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, stats.Put(ctx, &GameStats{Points: 42, EraUsage: map[string]int{"space": 3}}))
	got, err = stats.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 42, got.Points)
	assert.Equal(t, 3, got.EraUsage["space"])

	combos := NewComboRepo(st)
	seen, err := combos.Seen(ctx, "space", "mysterious")
	require.NoError(t, err)
	assert.False(t, seen)

	b := NewBatch()
	combos.Mark(b, "space", "mysterious")
	require.NoError(t, b.Commit(ctx, st))
	seen, err = combos.Seen(ctx, "space", "mysterious")
	require.NoError(t, err)
	assert.True(t, seen)

	prefs := NewPrefsRepo(st)
	require.NoError(t, prefs.SetCurrent(ctx, "diner", "nostalgic"))
	require.NoError(t, prefs.SetRandomMode(ctx, true))
	p, err := prefs.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, Prefs{CurrentEra: "diner", CurrentMood: "nostalgic", RandomMode: true}, *p)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	db1, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewChallengeRepo(NewSQLiteStore(db1, path)).Put(ctx, &DailyChallenge{Date: "2026-10-16", Era: "space", Mood: "energetic", BonusPoints: 50}))
	require.NoError(t, db1.Close())

	db2, err := Open(ctx, path)
	require.NoError(t, err)
	defer db2.Close()

	c, err := NewChallengeRepo(NewSQLiteStore(db2, path)).Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "2026-10-16", c.Date)
	assert.Equal(t, 50, c.BonusPoints)
}

func TestLockNamespace_Serializes(t *testing.T) {
	const n = 50
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := LockNamespace("test-ns")
			defer unlock()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()
	assert.Equal(t, n, counter)
}

func TestWatcher_ReportsWritesFromOtherConnections(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, path := newTestSQLiteStore(t)
	w, err := NewWatcher(st, path, nil)
	require.NoError(t, err)

	changes := make(chan []Change, 8)
	w.Subscribe(func(c []Change) { changes <- c })

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	// Give the watcher time to register and take its first snapshot.
	time.Sleep(200 * time.Millisecond)

	other, err := Open(ctx, path)
	require.NoError(t, err)
	defer other.Close()
	require.NoError(t, NewPrefsRepo(NewSQLiteStore(other, path)).SetRandomMode(ctx, true))

	select {
	case got := <-changes:
		require.NotEmpty(t, got)
		assert.Equal(t, KeyRandomMode, got[0].Key)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	require.NoError(t, <-done)
}
