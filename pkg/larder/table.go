package larder

import (
	"fmt"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Table is the handle for one registered record type. It owns the compiled
// model and drives statement building and execution for that type's rows.
type Table struct {
	db    *DB
	model *model
}

// Name returns the backing table name.
func (t *Table) Name() string {
	return t.model.table
}

// KeyField returns the name of the primary key field.
func (t *Table) KeyField() string {
	return t.model.key().Name
}

// New builds an unsaved record. Unset fields take their declared defaults;
// provided values are coerced to the field type. The record is not
// persisted until Save.
func (t *Table) New(values map[string]any) (*Record, error) {
	if err := checkFields(t.model, values); err != nil {
		return nil, err
	}
	rec, err := newRecord(t.db, t.model)
	if err != nil {
		return nil, err
	}
	for name, v := range values {
		if err := rec.Set(name, v); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// Create builds and immediately saves a record.
func (t *Table) Create(values map[string]any) (*Record, error) {
	rec, err := t.New(values)
	if err != nil {
		return nil, err
	}
	if err := rec.Save(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns the record with the given primary key value, or ErrNotFound.
func (t *Table) Get(key int64) (*Record, error) {
	return fetchOne(t.db, t.model, map[string]any{t.model.key().Name: key})
}

// GetBy returns the single record matching the criteria. Zero matches fail
// with ErrNotFound, more than one with ErrMultipleResults.
func (t *Table) GetBy(criteria map[string]any) (*Record, error) {
	return fetchOne(t.db, t.model, criteria)
}

// Filter returns a cursor over the records matching the equality criteria,
// in insertion (key) order. Empty or nil criteria match every row. Unknown
// criteria names fail with ErrUnknownField before the backend is touched.
func (t *Table) Filter(criteria map[string]any) (*Cursor, error) {
	return t.FilterSorted(criteria, "", false)
}

// FilterSorted is Filter with an explicit order: any declared field,
// ascending or descending. An empty orderBy sorts by the key.
func (t *Table) FilterSorted(criteria map[string]any, orderBy string, desc bool) (*Cursor, error) {
	stmt, args, err := selectSQL(t.model, criteria, orderBy, desc)
	if err != nil {
		return nil, err
	}
	rows, err := t.db.query(stmt, args)
	if err != nil {
		return nil, err
	}
	return &Cursor{db: t.db, model: t.model, rows: rows}, nil
}

// All returns every record in the table in insertion order.
func (t *Table) All() ([]*Record, error) {
	cur, err := t.Filter(nil)
	if err != nil {
		return nil, err
	}
	defer cur.Close()

	var recs []*Record
	for cur.Next() {
		recs = append(recs, cur.Record())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// Delete removes every row matching the criteria without materializing
// records, returning the number of rows removed. Empty criteria empty the
// table; callers wanting a single row pass the key.
func (t *Table) Delete(criteria map[string]any) (int64, error) {
	stmt, args, err := deleteSQL(t.model, criteria)
	if err != nil {
		return 0, err
	}
	res, err := t.db.exec(stmt, args)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected, nil
}

// conflictErr reports a redeclaration of a cached model with a different
// table name or field set.
func conflictErr(name string) error {
	return fmt.Errorf("model %s: conflicting redeclaration: %w", name, types.ErrInvalidSchema)
}
