package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/JonnyWalker81/workwell/backend/internal/store"
)

// SQLStore keeps entries in the result_cache table created by the store
// migrations. The *store.DB is owned by the caller.
type SQLStore struct {
	db  *store.DB
	now func() time.Time
}

// NewSQLStore creates a Store over db.
func NewSQLStore(db *store.DB) *SQLStore {
	return &SQLStore{db: db, now: time.Now}
}

// Get returns the value under key unless it has expired.
func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		value     []byte
		expiresAt int64
	)

	query := s.db.Rebind(`SELECT cache_value, expires_at FROM result_cache WHERE cache_key = ?`)
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if s.now().UnixMilli() >= expiresAt {
		return nil, false, nil
	}
	return value, true, nil
}

// Set upserts value under key.
func (s *SQLStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	expiresAt := s.now().Add(ttl).UnixMilli()
	if _, err := s.db.ExecContext(ctx, s.upsertQuery(), key, value, expiresAt); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

func (s *SQLStore) upsertQuery() string {
	switch s.db.Backend {
	case store.BackendMySQL:
		return `INSERT INTO result_cache (cache_key, cache_value, expires_at) VALUES (?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE cache_value = new.cache_value, expires_at = new.expires_at`
	case store.BackendPostgres:
		return `INSERT INTO result_cache (cache_key, cache_value, expires_at) VALUES ($1, $2, $3)
			ON CONFLICT (cache_key) DO UPDATE SET cache_value = EXCLUDED.cache_value, expires_at = EXCLUDED.expires_at`
	default:
		return `INSERT OR REPLACE INTO result_cache (cache_key, cache_value, expires_at) VALUES (?, ?, ?)`
	}
}

// Delete removes key if present.
func (s *SQLStore) Delete(ctx context.Context, key string) error {
	query := s.db.Rebind(`DELETE FROM result_cache WHERE cache_key = ?`)
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// PurgeExpired deletes expired rows and reports how many were removed.
func (s *SQLStore) PurgeExpired(ctx context.Context) (int64, error) {
	query := s.db.Rebind(`DELETE FROM result_cache WHERE expires_at <= ?`)
	res, err := s.db.ExecContext(ctx, query, s.now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", err)
	}
	return res.RowsAffected()
}

// Close is a no-op; the database handle belongs to the caller.
func (s *SQLStore) Close() error {
	return nil
}
