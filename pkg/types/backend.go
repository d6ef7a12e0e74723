package types

// Result reports the outcome of a statement that modifies rows.
type Result struct {
	RowsAffected int64
	LastInsertID int64
}

// Rows iterates over the raw rows of a query result. It matches the shape
// of database/sql rows so *sql.Rows satisfies it directly.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
	Err() error
}

// Backend is the minimal interface the mapping layer requires from an
// embedded SQL engine: ANSI-ish DDL and DML with ?-style positional
// parameters and an auto-increment integer primary key mechanism.
//
// A Backend is not required to be safe for unsynchronized concurrent use;
// callers needing concurrency must serialize access externally.
type Backend interface {
	// Exec runs a statement that returns no rows.
	Exec(query string, args ...any) (Result, error)

	// Query runs a statement and returns its rows. The caller must close
	// the returned Rows.
	Query(query string, args ...any) (Rows, error)

	// Close releases the underlying connection. Idempotent.
	Close() error
}
