package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// SQLiteStore is the durable Store backed by the kv table.
type SQLiteStore struct {
	db        *sql.DB
	namespace string
	feed      feed
}

// NewSQLiteStore wraps an opened and migrated database. namespace should
// identify the database file so that stores over the same file share locks.
func NewSQLiteStore(db *sql.DB, namespace string) *SQLiteStore {
	return &SQLiteStore{db: db, namespace: namespace}
}

func (s *SQLiteStore) Namespace() string { return s.namespace }

func (s *SQLiteStore) Get(ctx context.Context, keys ...string) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	if err := queryKeys(ctx, s.db, keys, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteStore) Set(ctx context.Context, values map[string]json.RawMessage) error {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}

	old := map[string]json.RawMessage{}
	err := WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := queryKeys(ctx, tx, keys, old); err != nil {
			return err
		}
		for k, v := range values {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO kv (key, value, updated_at, version) VALUES (?, ?, CURRENT_TIMESTAMP, 1)
				ON CONFLICT(key) DO UPDATE SET
					value = excluded.value,
					updated_at = excluded.updated_at,
					version = kv.version + 1
			`, k, string(v)); err != nil {
				return fmt.Errorf("kv upsert %s: %w", k, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	next := make(map[string]json.RawMessage, len(values))
	for k, v := range values {
		next[k] = cloneRaw(v)
	}
	s.feed.publish(diff(old, next))
	return nil
}

func (s *SQLiteStore) Subscribe(fn ChangeListener) func() {
	return s.feed.subscribe(fn)
}

// Snapshot returns every stored key.
func (s *SQLiteStore) Snapshot(ctx context.Context) (map[string]json.RawMessage, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM kv ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("kv snapshot: %w", err)
	}
	defer rows.Close()

	out := map[string]json.RawMessage{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("kv snapshot scan: %w", err)
		}
		out[k] = json.RawMessage(v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("kv snapshot rows: %w", err)
	}
	return out, nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func queryKeys(ctx context.Context, q queryer, keys []string, out map[string]json.RawMessage) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}

	rows, err := q.QueryContext(ctx, `SELECT key, value FROM kv WHERE key IN (`+placeholders+`)`, args...)
	if err != nil {
		return fmt.Errorf("kv get: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return fmt.Errorf("kv scan: %w", err)
		}
		out[k] = json.RawMessage(v)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("kv rows: %w", err)
	}
	return nil
}
