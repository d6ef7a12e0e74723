package larder

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Record is one in-memory row: an ordered mapping from field name to native
// value, backed by the model it was built from. Records produced by queries
// are independent copies; two lookups of the same row yield two records.
type Record struct {
	model   *model
	db      *DB
	values  map[string]any
	saved   bool
	deleted bool
}

// newRecord builds an unsaved record with every field at its default value.
func newRecord(db *DB, m *model) (*Record, error) {
	values := make(map[string]any, len(m.fields))
	for _, f := range m.fields {
		dv, err := types.DefaultValue(f)
		if err != nil {
			return nil, err
		}
		values[f.Name] = dv
	}
	return &Record{model: m, db: db, values: values}, nil
}

// Get returns the native value of a field, or ErrUnknownField.
func (r *Record) Get(name string) (any, error) {
	if _, ok := r.model.field(name); !ok {
		return nil, fmt.Errorf("model %s has no field %s: %w", r.model.name, name, types.ErrUnknownField)
	}
	return r.values[name], nil
}

// Set assigns a field value. The value is coerced through the storage
// conversion rules, so integer kinds normalize to int64, floats to float64,
// and times to UTC; an incompatible value fails with ErrTypeMismatch.
func (r *Record) Set(name string, v any) error {
	f, ok := r.model.field(name)
	if !ok {
		return fmt.Errorf("model %s has no field %s: %w", r.model.name, name, types.ErrUnknownField)
	}
	stored, err := types.ToStorage(f, v)
	if err != nil {
		return err
	}
	native, err := types.FromStorage(f, stored)
	if err != nil {
		return err
	}
	r.values[name] = native
	return nil
}

// Typed accessors. Each returns the zero value when the field is unset or
// holds a different type; use Get when the distinction matters.

// Int returns the field value as an int64.
func (r *Record) Int(name string) int64 {
	n, _ := r.values[name].(int64)
	return n
}

// Text returns the field value as a string.
func (r *Record) Text(name string) string {
	s, _ := r.values[name].(string)
	return s
}

// Real returns the field value as a float64.
func (r *Record) Real(name string) float64 {
	f, _ := r.values[name].(float64)
	return f
}

// Bool returns the field value as a bool.
func (r *Record) Bool(name string) bool {
	b, _ := r.values[name].(bool)
	return b
}

// Bytes returns the field value as a byte slice.
func (r *Record) Bytes(name string) []byte {
	bs, _ := r.values[name].([]byte)
	return bs
}

// Time returns the field value as a time.Time.
func (r *Record) Time(name string) time.Time {
	t, _ := r.values[name].(time.Time)
	return t
}

// Key returns the primary key value and whether one is set. Unsaved records
// without an explicit key report false.
func (r *Record) Key() (int64, bool) {
	n, ok := r.values[r.model.key().Name].(int64)
	return n, ok
}

// Saved reports whether the record is backed by a row.
func (r *Record) Saved() bool {
	return r.saved
}

// Values returns a copy of the record's field values keyed by field name,
// in no particular order.
func (r *Record) Values() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Fields returns the record's field names in descriptor order.
func (r *Record) Fields() []string {
	names := make([]string, len(r.model.fields))
	for i, f := range r.model.fields {
		names[i] = f.Name
	}
	return names
}

// Save persists the record. An unsaved record is inserted and adopts the
// backend-assigned key unless the caller set one explicitly; a saved record
// is updated in place by key. Auto-timestamp fields are stamped on the
// record itself before the statement is built.
func (r *Record) Save() error {
	if r.deleted {
		return fmt.Errorf("saving %s record: %w", r.model.name, types.ErrDeleted)
	}

	now := time.Now().UTC()
	if !r.saved {
		stampTimestamps(r.model, r.values, true, now)
		stmt, args, err := insertSQL(r.model, r.values)
		if err != nil {
			return err
		}
		res, err := r.db.exec(stmt, args)
		if err != nil {
			return err
		}
		if _, set := r.Key(); !set {
			r.values[r.model.key().Name] = res.LastInsertID
		}
		r.saved = true
		return nil
	}

	key, ok := r.Key()
	if !ok {
		return fmt.Errorf("saving %s record: %w", r.model.name, types.ErrNotSaved)
	}
	stampTimestamps(r.model, r.values, false, now)
	stmt, args, err := updateSQL(r.model, key, r.values)
	if err != nil {
		return err
	}
	_, err = r.db.exec(stmt, args)
	return err
}

// Delete removes the backing row. The record detaches: any further Save,
// Refresh, or Delete fails with ErrDeleted. Deleting a never-saved record
// fails with ErrNotSaved.
func (r *Record) Delete() error {
	if r.deleted {
		return fmt.Errorf("deleting %s record: %w", r.model.name, types.ErrDeleted)
	}
	key, ok := r.Key()
	if !r.saved || !ok {
		return fmt.Errorf("deleting %s record: %w", r.model.name, types.ErrNotSaved)
	}

	stmt, args, err := deleteSQL(r.model, map[string]any{r.model.key().Name: key})
	if err != nil {
		return err
	}
	if _, err := r.db.exec(stmt, args); err != nil {
		return err
	}
	r.deleted = true
	return nil
}

// Refresh re-reads the backing row into the record, discarding unsaved
// field changes. Fails with ErrNotFound when the row no longer exists.
func (r *Record) Refresh() error {
	if r.deleted {
		return fmt.Errorf("refreshing %s record: %w", r.model.name, types.ErrDeleted)
	}
	key, ok := r.Key()
	if !r.saved || !ok {
		return fmt.Errorf("refreshing %s record: %w", r.model.name, types.ErrNotSaved)
	}

	fresh, err := fetchOne(r.db, r.model, map[string]any{r.model.key().Name: key})
	if err != nil {
		return err
	}
	r.values = fresh.values
	return nil
}
