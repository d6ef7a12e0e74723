package larder

import "github.com/mesh-intelligence/larder/pkg/types"

// Cursor is a lazy, forward-only iteration over the records matching a
// filter. It is not restartable; call Filter again for a fresh pass. The
// backend rowset is released on exhaustion, on any error, and on Close.
type Cursor struct {
	db     *DB
	model  *model
	rows   types.Rows
	rec    *Record
	err    error
	closed bool
}

// Next advances to the next record, materializing it from the current row.
// It returns false at the end of the result set or on error; check Err
// after the loop.
func (c *Cursor) Next() bool {
	if c.closed || c.err != nil {
		return false
	}
	if !c.rows.Next() {
		if err := c.rows.Err(); err != nil {
			c.err = storageErr("reading rows", err)
		}
		_ = c.Close()
		return false
	}

	rec, err := scanRecord(c.db, c.model, c.rows)
	if err != nil {
		c.err = err
		_ = c.Close()
		return false
	}
	c.rec = rec
	return true
}

// Record returns the record materialized by the last successful Next.
func (c *Cursor) Record() *Record {
	return c.rec
}

// Err returns the first error hit while iterating, if any.
func (c *Cursor) Err() error {
	return c.err
}

// Close releases the backend rowset. Idempotent.
func (c *Cursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if err := c.rows.Close(); err != nil {
		return storageErr("closing rows", err)
	}
	return nil
}
