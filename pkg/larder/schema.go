package larder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// createTableSQL emits the table-creation statement for a model. The
// statement uses IF NOT EXISTS, so running it against an existing table is
// a no-op rather than an error.
func createTableSQL(m *model) string {
	cols := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		cols = append(cols, columnDef(f))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", m.table, strings.Join(cols, ", "))
}

// columnDef renders one column of the CREATE TABLE statement.
func columnDef(f types.Field) string {
	def := f.ColumnName() + " " + types.ColumnType(f.Type)
	if f.Key {
		return def + " PRIMARY KEY AUTOINCREMENT"
	}
	if f.NotNull {
		def += " NOT NULL"
	}
	if f.Unique {
		def += " UNIQUE"
	}
	if lit, ok := defaultLiteral(f); ok {
		def += " DEFAULT " + lit
	}
	return def
}

// defaultLiteral renders a declared default as a DDL literal. Only scalar
// defaults are emitted; blob and datetime defaults are applied when records
// are built, not by the engine. Defaults were validated at model build, so
// a conversion failure here only suppresses the literal.
func defaultLiteral(f types.Field) (string, bool) {
	if f.Default == nil {
		return "", false
	}
	stored, err := types.ToStorage(f, f.Default)
	if err != nil {
		return "", false
	}
	switch v := stored.(type) {
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case string:
		if f.Type == types.DateTime {
			return "", false
		}
		return "'" + strings.ReplaceAll(v, "'", "''") + "'", true
	}
	return "", false
}
