// Package store implements the persistence layer: sqlite connection
// handling, embedded schema migrations, the datastore gateway and the
// per-aggregate repositories.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

// Store bundles the database handle with the repositories built on top of
// the gateway.
type Store struct {
	db *sql.DB

	Gateway *Gateway
	Nodes   *NodeRepo
	Days    *DayRepo
	Tenants *TenantRepo
}

// Open opens (or creates) the database at path, applies connection pragmas
// and runs pending migrations. Use ":memory:" for tests.
func Open(path string, logger *slog.Logger) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	if path == ":memory:" {
		dsn = ":memory:"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// The driver serializes access per connection; a single connection keeps
	// writes ordered and is required for a shared in-memory database.
	db.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db}
	s.Gateway = NewGateway(db, logger)
	s.Nodes = NewNodeRepo(s.Gateway)
	s.Days = NewDayRepo(s.Gateway)
	s.Tenants = NewTenantRepo(s.Gateway)
	return s, nil
}

// DB exposes the raw handle for tests.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error {
	return s.db.Close()
}
