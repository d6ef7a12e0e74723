package larder

import (
	"fmt"

	"github.com/mesh-intelligence/larder/pkg/sqlite"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// DB is the explicit context tying registered record types to one backend
// connection. It caches the compiled model per record type name, so Table
// is lazy and idempotent.
//
// A DB wraps a single connection and is not safe for unsynchronized use
// from multiple goroutines.
type DB struct {
	backend types.Backend
	tables  map[string]*Table
	closed  bool
}

// New wraps an already-open backend. The DB takes ownership: Close closes
// the backend.
func New(backend types.Backend) *DB {
	return &DB{
		backend: backend,
		tables:  make(map[string]*Table),
	}
}

// Open opens the bundled embedded SQLite backend and wraps it.
func Open(cfg sqlite.Config) (*DB, error) {
	backend, err := sqlite.Open(cfg)
	if err != nil {
		return nil, err
	}
	return New(backend), nil
}

// Table registers a record type and returns its handle. The first call for
// a type name compiles the model and creates the backing table if it does
// not exist; later calls return the cached handle. Redeclaring a cached
// name with a different table or field set fails with ErrInvalidSchema.
func (db *DB) Table(s types.Schema) (*Table, error) {
	if db.closed {
		return nil, fmt.Errorf("registering model %s: %w", s.Name, types.ErrClosed)
	}

	m, err := newModel(s)
	if err != nil {
		return nil, err
	}

	if cached, ok := db.tables[s.Name]; ok {
		if !cached.model.same(m) {
			return nil, conflictErr(s.Name)
		}
		return cached, nil
	}

	if _, err := db.exec(createTableSQL(m), nil); err != nil {
		return nil, err
	}

	t := &Table{db: db, model: m}
	db.tables[s.Name] = t
	return t, nil
}

// Close releases the backend connection. Idempotent; after Close every
// operation fails with ErrClosed.
func (db *DB) Close() error {
	if db.closed {
		return nil
	}
	db.closed = true
	db.tables = make(map[string]*Table)
	return db.backend.Close()
}
