package larder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/types"
)

func TestCreateTableSQL(t *testing.T) {
	m, err := newModel(types.Schema{
		Name: "Item",
		Fields: []types.Field{
			{Name: "sku", Type: types.Text, Unique: true},
			{Name: "name", Type: types.Text, NotNull: true},
			{Name: "price", Type: types.Real, Default: 0.0},
			{Name: "in_stock", Type: types.Boolean, NotNull: true, Default: true},
			{Name: "photo", Type: types.Blob},
			{Name: "added_at", Type: types.DateTime, AutoCreate: true},
		},
	})
	require.NoError(t, err)

	want := "CREATE TABLE IF NOT EXISTS item (" +
		"id INTEGER PRIMARY KEY AUTOINCREMENT, " +
		"sku TEXT UNIQUE, " +
		"name TEXT NOT NULL, " +
		"price REAL DEFAULT 0, " +
		"in_stock INTEGER NOT NULL DEFAULT 1, " +
		"photo BLOB, " +
		"added_at TEXT)"
	assert.Equal(t, want, createTableSQL(m))
}

func TestCreateTableSQLColumnOverride(t *testing.T) {
	m, err := newModel(types.Schema{
		Name: "Car",
		Fields: []types.Field{
			{Name: "make", Column: "manufacturer", Type: types.Text},
		},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS car (id INTEGER PRIMARY KEY AUTOINCREMENT, manufacturer TEXT)",
		createTableSQL(m))
}

func TestCreateTableSQLEscapesTextDefault(t *testing.T) {
	m, err := newModel(types.Schema{
		Name: "Note",
		Fields: []types.Field{
			{Name: "body", Type: types.Text, Default: "it's fine"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, createTableSQL(m), "DEFAULT 'it''s fine'")
}

func TestCreateTableIdempotent(t *testing.T) {
	db := newTestDB(t)

	schema := types.Schema{
		Name:   "Car",
		Fields: []types.Field{{Name: "make", Type: types.Text}},
	}
	m, err := newModel(schema)
	require.NoError(t, err)

	_, err = db.exec(createTableSQL(m), nil)
	require.NoError(t, err)
	_, err = db.exec(createTableSQL(m), nil)
	require.NoError(t, err, "re-running create against an existing table is a no-op")
}
