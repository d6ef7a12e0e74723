package types

import "errors"

// Standard errors returned by the mapping layer. Call sites wrap these with
// fmt.Errorf and %w to add context; callers dispatch with errors.Is.
var (
	// ErrInvalidSchema reports a malformed model declaration: multiple key
	// fields, a non-integer key, duplicate or empty field names, or auto
	// timestamp flags on a non-datetime field. Detected when the model is
	// built; the schema is unusable.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrTypeMismatch reports a value that cannot be converted to or from
	// its declared storage type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnknownField reports a field name that is not part of the model.
	// Raised before any statement reaches the backend.
	ErrUnknownField = errors.New("unknown field")

	// ErrNotFound is returned by lookups that match no row.
	ErrNotFound = errors.New("record not found")

	// ErrMultipleResults is returned by single-record lookups that match
	// more than one row.
	ErrMultipleResults = errors.New("multiple records match")

	// ErrNotSaved reports an operation that needs a persisted record,
	// such as deleting a record that was never saved.
	ErrNotSaved = errors.New("record not saved")

	// ErrDeleted reports an operation on a record after Delete.
	ErrDeleted = errors.New("record deleted")

	// ErrClosed reports an operation on a closed DB.
	ErrClosed = errors.New("database closed")

	// ErrStorage reports a backend-level failure. The causing backend
	// error is always wrapped alongside it.
	ErrStorage = errors.New("storage error")
)
