package larder

import (
	"fmt"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// storageErr wraps a backend failure so callers can match both ErrStorage
// and the underlying cause with errors.Is.
func storageErr(context string, err error) error {
	return fmt.Errorf("%s: %w: %w", context, types.ErrStorage, err)
}

// exec runs a statement that returns no rows.
func (db *DB) exec(stmt string, args []any) (types.Result, error) {
	if db.closed {
		return types.Result{}, fmt.Errorf("executing statement: %w", types.ErrClosed)
	}
	res, err := db.backend.Exec(stmt, args...)
	if err != nil {
		return types.Result{}, storageErr("executing statement", err)
	}
	return res, nil
}

// query runs a statement and returns its rows.
func (db *DB) query(stmt string, args []any) (types.Rows, error) {
	if db.closed {
		return nil, fmt.Errorf("querying: %w", types.ErrClosed)
	}
	rows, err := db.backend.Query(stmt, args...)
	if err != nil {
		return nil, storageErr("querying", err)
	}
	return rows, nil
}

// scanRecord materializes the current row into a fresh, saved record,
// converting each column in descriptor order.
func scanRecord(db *DB, m *model, rows types.Rows) (*Record, error) {
	raw := make([]any, len(m.fields))
	dest := make([]any, len(m.fields))
	for i := range raw {
		dest[i] = &raw[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, storageErr("scanning row", err)
	}

	values := make(map[string]any, len(m.fields))
	for i, f := range m.fields {
		native, err := types.FromStorage(f, raw[i])
		if err != nil {
			return nil, err
		}
		values[f.Name] = native
	}
	return &Record{model: m, db: db, values: values, saved: true}, nil
}

// fetchOne runs an equality-filtered select expecting exactly one match.
// Zero matches fail with ErrNotFound, more than one with ErrMultipleResults.
func fetchOne(db *DB, m *model, criteria map[string]any) (*Record, error) {
	stmt, args, err := selectSQL(m, criteria, "", false)
	if err != nil {
		return nil, err
	}
	rows, err := db.query(stmt, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, storageErr("reading rows", err)
		}
		return nil, fmt.Errorf("getting %s record: %w", m.name, types.ErrNotFound)
	}
	rec, err := scanRecord(db, m, rows)
	if err != nil {
		return nil, err
	}
	if rows.Next() {
		return nil, fmt.Errorf("getting %s record: %w", m.name, types.ErrMultipleResults)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("reading rows", err)
	}
	return rec, nil
}
