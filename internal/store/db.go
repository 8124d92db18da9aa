// Package store opens the SQL backends WorkWell can persist to and applies
// their schema migrations.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Backend identifies a SQL dialect
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendMySQL    Backend = "mysql"
)

// ParseBackend validates a backend name from configuration.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendSQLite, BackendPostgres, BackendMySQL:
		return b, nil
	default:
		return "", fmt.Errorf("unsupported SQL backend: %q", s)
	}
}

// DriverName is the database/sql driver registered for b.
func (b Backend) DriverName() string {
	switch b {
	case BackendPostgres:
		return "pgx"
	case BackendMySQL:
		return "mysql"
	default:
		return "sqlite"
	}
}

// DB is a connection pool that knows its dialect.
type DB struct {
	*sql.DB
	Backend Backend
}

// Open connects to backend at dsn and pings it.
func Open(ctx context.Context, backend Backend, dsn string) (*DB, error) {
	db, err := sql.Open(backend.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", backend, err)
	}

	// SQLite allows one writer; a single connection also keeps ":memory:"
	// databases from splitting per connection.
	if backend == BackendSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", backend, err)
	}

	return &DB{DB: db, Backend: backend}, nil
}

// Rebind rewrites "?" placeholders into the dialect's form. Queries in this
// module are written with "?" and never contain literal question marks.
func (db *DB) Rebind(query string) string {
	if db.Backend != BackendPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
