package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
)

var memorySeq atomic.Int64

// MemoryStore is an in-process Store used by tests and dry runs.
type MemoryStore struct {
	mu        sync.RWMutex
	data      map[string]json.RawMessage
	namespace string
	feed      feed

	// FailWrites makes every Set fail, to exercise error paths.
	FailWrites bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:      map[string]json.RawMessage{},
		namespace: fmt.Sprintf("memory:%d", memorySeq.Add(1)),
	}
}

func (m *MemoryStore) Namespace() string { return m.namespace }

func (m *MemoryStore) Get(ctx context.Context, keys ...string) (map[string]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		if v, ok := m.data[k]; ok {
			out[k] = cloneRaw(v)
		}
	}
	return out, nil
}

func (m *MemoryStore) Set(ctx context.Context, values map[string]json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	if m.FailWrites {
		m.mu.Unlock()
		return fmt.Errorf("memory store: writes disabled")
	}
	old := make(map[string]json.RawMessage, len(values))
	next := make(map[string]json.RawMessage, len(values))
	for k, v := range values {
		if ov, ok := m.data[k]; ok {
			old[k] = ov
		}
		next[k] = cloneRaw(v)
		m.data[k] = next[k]
	}
	m.mu.Unlock()

	m.feed.publish(diff(old, next))
	return nil
}

func (m *MemoryStore) Subscribe(fn ChangeListener) func() {
	return m.feed.subscribe(fn)
}

// Len returns the number of stored keys.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
