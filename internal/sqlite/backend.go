// Package sqlite implements the embedded SQLite backend for larder over
// database/sql with the modernc.org/sqlite driver.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// ErrNoPath is returned by Open when the config has no database path.
var ErrNoPath = errors.New("sqlite: no database path")

// defaultBusyTimeout bounds how long the engine waits on a locked database
// before surfacing the error. There are no retries above this layer.
const defaultBusyTimeout = 5 * time.Second

// Config configures the SQLite backend.
type Config struct {
	// Path is the database file path. ":memory:" opens a private
	// in-memory database that lives until Close.
	Path string

	// BusyTimeout overrides the lock wait; zero means 5s.
	BusyTimeout time.Duration
}

// Validate checks the config for required values.
func (c Config) Validate() error {
	if c.Path == "" {
		return ErrNoPath
	}
	return nil
}

// Backend implements types.Backend over a single SQLite connection.
type Backend struct {
	db     *sql.DB
	closed bool
}

// Compile-time interface check: Backend must implement types.Backend.
var _ types.Backend = (*Backend)(nil)

// Open opens the database at cfg.Path, creating the file if needed. The
// connection pool is pinned to one connection, matching the layer's
// single-connection access model.
func Open(cfg Config) (*Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.BusyTimeout
	if timeout <= 0 {
		timeout = defaultBusyTimeout
	}

	dsn := cfg.Path
	if dsn != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)",
			cfg.Path, timeout.Milliseconds())
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", cfg.Path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening %s: %w", cfg.Path, err)
	}
	return &Backend{db: db}, nil
}

// Exec runs a statement that returns no rows.
func (b *Backend) Exec(query string, args ...any) (types.Result, error) {
	res, err := b.db.Exec(query, args...)
	if err != nil {
		return types.Result{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return types.Result{}, fmt.Errorf("reading affected rows: %w", err)
	}
	last, err := res.LastInsertId()
	if err != nil {
		return types.Result{}, fmt.Errorf("reading last insert id: %w", err)
	}
	return types.Result{RowsAffected: affected, LastInsertID: last}, nil
}

// Query runs a statement and returns its rows. *sql.Rows satisfies
// types.Rows directly.
func (b *Backend) Query(query string, args ...any) (types.Rows, error) {
	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Close releases the connection. Idempotent.
func (b *Backend) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	return b.db.Close()
}
