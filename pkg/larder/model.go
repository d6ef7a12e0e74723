package larder

import (
	"fmt"
	"reflect"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// implicitKeyName is the field name synthesized when a schema declares no
// key of its own.
const implicitKeyName = "id"

// model is the compiled descriptor for one record type: the table name and
// the fields in column order with the key first. Built once per record type
// and cached by the owning DB.
type model struct {
	name   string
	table  string
	fields []types.Field
	index  map[string]int // field name -> position in fields
}

// newModel compiles a schema into a model. At most one field may be the
// key, and it must be an integer; when no field is flagged, an integer key
// named "id" is synthesized as the first column. Any malformed declaration
// fails with ErrInvalidSchema.
func newModel(s types.Schema) (*model, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("schema has no name: %w", types.ErrInvalidSchema)
	}
	if len(s.Fields) == 0 {
		return nil, fmt.Errorf("model %s declares no fields: %w", s.Name, types.ErrInvalidSchema)
	}

	keyIdx := -1
	for i, f := range s.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("model %s: field %d has no name: %w", s.Name, i, types.ErrInvalidSchema)
		}
		if !types.IsValidFieldType(f.Type) {
			return nil, fmt.Errorf("model %s: field %s has unknown type %q: %w", s.Name, f.Name, f.Type, types.ErrInvalidSchema)
		}
		if (f.AutoCreate || f.AutoUpdate) && f.Type != types.DateTime {
			return nil, fmt.Errorf("model %s: field %s: auto timestamps require a datetime field: %w", s.Name, f.Name, types.ErrInvalidSchema)
		}
		if f.Key {
			if keyIdx >= 0 {
				return nil, fmt.Errorf("model %s: fields %s and %s both declare the key: %w",
					s.Name, s.Fields[keyIdx].Name, f.Name, types.ErrInvalidSchema)
			}
			if f.Type != types.Integer {
				return nil, fmt.Errorf("model %s: key field %s must be an integer: %w", s.Name, f.Name, types.ErrInvalidSchema)
			}
			keyIdx = i
		}
	}

	// Key first, remaining fields in declaration order.
	fields := make([]types.Field, 0, len(s.Fields)+1)
	if keyIdx < 0 {
		for _, f := range s.Fields {
			if f.Name == implicitKeyName {
				return nil, fmt.Errorf("model %s: field %s collides with the implicit key: %w",
					s.Name, f.Name, types.ErrInvalidSchema)
			}
		}
		fields = append(fields, types.Field{Name: implicitKeyName, Type: types.Integer, Key: true})
		fields = append(fields, s.Fields...)
	} else {
		fields = append(fields, s.Fields[keyIdx])
		fields = append(fields, s.Fields[:keyIdx]...)
		fields = append(fields, s.Fields[keyIdx+1:]...)
	}

	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, dup := index[f.Name]; dup {
			return nil, fmt.Errorf("model %s: duplicate field %s: %w", s.Name, f.Name, types.ErrInvalidSchema)
		}
		index[f.Name] = i

		if f.Default != nil {
			if _, err := types.ToStorage(f, f.Default); err != nil {
				return nil, fmt.Errorf("model %s: bad default for field %s: %w", s.Name, f.Name, types.ErrInvalidSchema)
			}
		}
	}

	return &model{
		name:   s.Name,
		table:  s.TableName(),
		fields: fields,
		index:  index,
	}, nil
}

// key returns the primary key field. It is always the first field.
func (m *model) key() types.Field {
	return m.fields[0]
}

// field looks up a field by name.
func (m *model) field(name string) (types.Field, bool) {
	i, ok := m.index[name]
	if !ok {
		return types.Field{}, false
	}
	return m.fields[i], true
}

// same reports whether two compiled models describe the same table and
// field set. Used to detect conflicting redeclarations of a cached model.
func (m *model) same(other *model) bool {
	return m.table == other.table && reflect.DeepEqual(m.fields, other.fields)
}
