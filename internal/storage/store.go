package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Store is the key/value state store shared by the engine and the
// presentation layers. All keys live in a single namespace.
type Store interface {
	// Get returns the stored values for the requested keys. Missing keys are
	// absent from the result.
	Get(ctx context.Context, keys ...string) (map[string]json.RawMessage, error)
	// Set writes all values in one atomic step.
	Set(ctx context.Context, values map[string]json.RawMessage) error
	// Subscribe registers a change listener and returns a function that
	// removes it.
	Subscribe(fn ChangeListener) (cancel func())
	// Namespace identifies the underlying storage area.
	Namespace() string
}

// Change describes one key updated by a Set.
type Change struct {
	Key      string
	OldValue json.RawMessage // nil when the key did not exist
	NewValue json.RawMessage
}

// ChangeListener receives the keys changed by one Set, sorted by key.
type ChangeListener func(changes []Change)

// feed fans out change batches to subscribers.
type feed struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[int]ChangeListener
}

func (f *feed) subscribe(fn ChangeListener) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listeners == nil {
		f.listeners = map[int]ChangeListener{}
	}
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.listeners, id)
			f.mu.Unlock()
		})
	}
}

func (f *feed) publish(changes []Change) {
	if len(changes) == 0 {
		return
	}
	f.mu.RLock()
	ls := make([]ChangeListener, 0, len(f.listeners))
	for _, fn := range f.listeners {
		ls = append(ls, fn)
	}
	f.mu.RUnlock()

	for _, fn := range ls {
		fn(changes)
	}
}

// diff returns the changes needed to go from old to next for the keys in
// next. Values that are byte-identical are not reported.
func diff(old map[string]json.RawMessage, next map[string]json.RawMessage) []Change {
	var out []Change
	for key, nv := range next {
		ov, ok := old[key]
		if ok && bytes.Equal(ov, nv) {
			continue
		}
		c := Change{Key: key, NewValue: nv}
		if ok {
			c.OldValue = ov
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Batch collects JSON-encoded values for a single Set.
type Batch struct {
	values map[string]json.RawMessage
	err    error
}

func NewBatch() *Batch {
	return &Batch{values: map[string]json.RawMessage{}}
}

// Put encodes v under key. The first encoding error is kept and returned by
// Commit.
func (b *Batch) Put(key string, v any) {
	if b.err != nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		b.err = fmt.Errorf("encode %s: %w", key, err)
		return
	}
	b.values[key] = data
}

// Commit writes the batch to st.
func (b *Batch) Commit(ctx context.Context, st Store) error {
	if b.err != nil {
		return b.err
	}
	if len(b.values) == 0 {
		return nil
	}
	return st.Set(ctx, b.values)
}

// Decode unmarshals snapshot[key] into v. It reports false when the key is
// absent or holds JSON null.
func Decode(snapshot map[string]json.RawMessage, key string, v any) (bool, error) {
	raw, ok := snapshot[key]
	if !ok || len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func cloneRaw(v json.RawMessage) json.RawMessage {
	if v == nil {
		return nil
	}
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out
}
