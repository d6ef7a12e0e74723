package types

import (
	"fmt"
	"math"
	"time"
)

// ToStorage converts a native value to the column value stored for the
// field. A nil value maps to NULL when the field is nullable; under NotNull
// it is a type mismatch. The key field is exempt from the NotNull rule
// because a NULL key means backend-assigned.
// Pure function: no side effects, errors are never swallowed.
func ToStorage(f Field, v any) (any, error) {
	if v == nil {
		if f.NotNull && !f.Key {
			return nil, fmt.Errorf("field %s: null not allowed: %w", f.Name, ErrTypeMismatch)
		}
		return nil, nil
	}

	switch f.Type {
	case Integer:
		n, ok := toInt64(v)
		if !ok {
			return nil, storeErr(f, v)
		}
		return n, nil
	case Text:
		s, ok := v.(string)
		if !ok {
			return nil, storeErr(f, v)
		}
		return s, nil
	case Real:
		r, ok := toFloat64(v)
		if !ok {
			return nil, storeErr(f, v)
		}
		return r, nil
	case Boolean:
		b, ok := v.(bool)
		if !ok {
			return nil, storeErr(f, v)
		}
		if b {
			return int64(1), nil
		}
		return int64(0), nil
	case Blob:
		bs, ok := v.([]byte)
		if !ok {
			return nil, storeErr(f, v)
		}
		return bs, nil
	case DateTime:
		t, ok := v.(time.Time)
		if !ok {
			return nil, storeErr(f, v)
		}
		return t.UTC().Format(time.RFC3339Nano), nil
	default:
		return nil, fmt.Errorf("field %s: unknown type %q: %w", f.Name, f.Type, ErrTypeMismatch)
	}
}

// FromStorage converts a stored column value back to the native value for
// the field. It accepts the value kinds the SQLite driver produces for each
// affinity, so integers widen to int64 and booleans read back from 0/1.
func FromStorage(f Field, v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch f.Type {
	case Integer:
		n, ok := toInt64(v)
		if !ok {
			return nil, loadErr(f, v)
		}
		return n, nil
	case Text:
		switch s := v.(type) {
		case string:
			return s, nil
		case []byte:
			return string(s), nil
		}
		return nil, loadErr(f, v)
	case Real:
		r, ok := toFloat64(v)
		if !ok {
			return nil, loadErr(f, v)
		}
		return r, nil
	case Boolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
		n, ok := toInt64(v)
		if !ok {
			return nil, loadErr(f, v)
		}
		return n != 0, nil
	case Blob:
		switch bs := v.(type) {
		case []byte:
			return bs, nil
		case string:
			return []byte(bs), nil
		}
		return nil, loadErr(f, v)
	case DateTime:
		switch t := v.(type) {
		case time.Time:
			return t.UTC(), nil
		case string:
			parsed, err := time.Parse(time.RFC3339Nano, t)
			if err != nil {
				return nil, fmt.Errorf("field %s: parsing %q: %w", f.Name, t, ErrTypeMismatch)
			}
			return parsed.UTC(), nil
		}
		return nil, loadErr(f, v)
	default:
		return nil, fmt.Errorf("field %s: unknown type %q: %w", f.Name, f.Type, ErrTypeMismatch)
	}
}

// DefaultValue returns the initial native value for a field with no caller
// supplied value: the declared default (coerced through the conversion
// rules), nil for the key and for nullable fields, and the type's zero
// value under NotNull.
func DefaultValue(f Field) (any, error) {
	if f.Default != nil {
		stored, err := ToStorage(f, f.Default)
		if err != nil {
			return nil, err
		}
		return FromStorage(f, stored)
	}
	if f.Key || !f.NotNull {
		return nil, nil
	}
	switch f.Type {
	case Integer:
		return int64(0), nil
	case Text:
		return "", nil
	case Real:
		return float64(0), nil
	case Boolean:
		return false, nil
	case Blob:
		return []byte{}, nil
	case DateTime:
		return time.Time{}.UTC(), nil
	default:
		return nil, fmt.Errorf("field %s: unknown type %q: %w", f.Name, f.Type, ErrTypeMismatch)
	}
}

// toInt64 widens any Go integer kind to int64. A uint64 beyond the int64
// range does not fit and fails the conversion.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint:
		return int64(n), uint64(n) <= math.MaxInt64
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= math.MaxInt64
	}
	return 0, false
}

// toFloat64 accepts float kinds and integer kinds for real fields.
func toFloat64(v any) (float64, bool) {
	switch r := v.(type) {
	case float64:
		return r, true
	case float32:
		return float64(r), true
	}
	if n, ok := toInt64(v); ok {
		return float64(n), true
	}
	return 0, false
}

func storeErr(f Field, v any) error {
	return fmt.Errorf("field %s: cannot store %T as %s: %w", f.Name, v, f.Type, ErrTypeMismatch)
}

func loadErr(f Field, v any) error {
	return fmt.Errorf("field %s: cannot load %T as %s: %w", f.Name, v, f.Type, ErrTypeMismatch)
}
