package larder

import (
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// checkFields validates that every name in the map is a declared field of
// the model. Called before any statement is built, so an unknown name never
// reaches the backend.
func checkFields(m *model, values map[string]any) error {
	for name := range values {
		if _, ok := m.index[name]; !ok {
			return fmt.Errorf("model %s has no field %s: %w", m.name, name, types.ErrUnknownField)
		}
	}
	return nil
}

// stampTimestamps overwrites auto-timestamp fields in values with now:
// AutoUpdate fields on every save, AutoCreate fields only when creating.
// Caller-supplied values for those fields are replaced.
func stampTimestamps(m *model, values map[string]any, creating bool, now time.Time) {
	for _, f := range m.fields {
		if f.AutoUpdate || (creating && f.AutoCreate) {
			values[f.Name] = now
		}
	}
}

// insertSQL builds a parameterized INSERT from the full value set of a
// record. The key column is omitted so the backend assigns it, unless the
// caller set a key value explicitly.
func insertSQL(m *model, values map[string]any) (string, []any, error) {
	if err := checkFields(m, values); err != nil {
		return "", nil, err
	}

	cols := make([]string, 0, len(m.fields))
	marks := make([]string, 0, len(m.fields))
	args := make([]any, 0, len(m.fields))
	for _, f := range m.fields {
		v := values[f.Name]
		if f.Key && v == nil {
			continue
		}
		stored, err := types.ToStorage(f, v)
		if err != nil {
			return "", nil, err
		}
		cols = append(cols, f.ColumnName())
		marks = append(marks, "?")
		args = append(args, stored)
	}

	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		m.table, strings.Join(cols, ", "), strings.Join(marks, ", "))
	return stmt, args, nil
}

// updateSQL builds a parameterized UPDATE setting every non-key field,
// keyed on the primary key value.
func updateSQL(m *model, key int64, values map[string]any) (string, []any, error) {
	if err := checkFields(m, values); err != nil {
		return "", nil, err
	}

	sets := make([]string, 0, len(m.fields)-1)
	args := make([]any, 0, len(m.fields))
	for _, f := range m.fields {
		if f.Key {
			continue
		}
		stored, err := types.ToStorage(f, values[f.Name])
		if err != nil {
			return "", nil, err
		}
		sets = append(sets, f.ColumnName()+" = ?")
		args = append(args, stored)
	}
	args = append(args, key)

	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		m.table, strings.Join(sets, ", "), m.key().ColumnName())
	return stmt, args, nil
}

// deleteSQL builds a parameterized DELETE. Empty criteria delete every row
// in the table; that is an intentional bulk operation, not an error.
func deleteSQL(m *model, criteria map[string]any) (string, []any, error) {
	where, args, err := whereClause(m, criteria)
	if err != nil {
		return "", nil, err
	}
	return "DELETE FROM " + m.table + where, args, nil
}

// selectSQL builds a parameterized SELECT of every column in descriptor
// order. Empty criteria select all rows. An empty orderBy sorts by the key
// ascending, which is insertion order for an auto-increment key.
func selectSQL(m *model, criteria map[string]any, orderBy string, desc bool) (string, []any, error) {
	where, args, err := whereClause(m, criteria)
	if err != nil {
		return "", nil, err
	}

	if orderBy == "" {
		orderBy = m.key().Name
	}
	orderField, ok := m.field(orderBy)
	if !ok {
		return "", nil, fmt.Errorf("model %s has no field %s: %w", m.name, orderBy, types.ErrUnknownField)
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}

	cols := make([]string, len(m.fields))
	for i, f := range m.fields {
		cols[i] = f.ColumnName()
	}

	stmt := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s %s",
		strings.Join(cols, ", "), m.table, where, orderField.ColumnName(), dir)
	return stmt, args, nil
}

// whereClause renders equality criteria as an AND-joined WHERE clause with
// bound parameters. Criteria are iterated in descriptor order so the
// statement text is deterministic for a given field set.
func whereClause(m *model, criteria map[string]any) (string, []any, error) {
	if err := checkFields(m, criteria); err != nil {
		return "", nil, err
	}
	if len(criteria) == 0 {
		return "", nil, nil
	}

	conds := make([]string, 0, len(criteria))
	args := make([]any, 0, len(criteria))
	for _, f := range m.fields {
		v, ok := criteria[f.Name]
		if !ok {
			continue
		}
		stored, err := types.ToStorage(f, v)
		if err != nil {
			return "", nil, err
		}
		conds = append(conds, f.ColumnName()+" = ?")
		args = append(args, stored)
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}
